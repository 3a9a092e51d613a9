package redis

import (
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
)

// IsNil reports whether err is the go-redis "key does not exist" error.
func IsNil(err error) bool {
	return errors.Is(err, goredis.Nil)
}
