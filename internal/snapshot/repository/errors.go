package repository

import "errors"

var (
	ErrNotFound   = errors.New("repository: source not found")
	ErrUnreadable = errors.New("repository: source unreadable")
)
