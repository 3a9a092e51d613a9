package repository

import "errors"

var (
	ErrCacheMiss = errors.New("repository: cache miss")
)
