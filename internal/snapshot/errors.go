package snapshot

import "errors"

var (
	ErrSourceNotFound   = errors.New("source table not found")
	ErrSourceUnreadable = errors.New("source table unreadable")
	ErrMissingColumn    = errors.New("required column missing")
)
