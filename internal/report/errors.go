package report

import "errors"

var (
	ErrEmptySelection   = errors.New("select at least one period to view the summary")
	ErrInvalidSelection = errors.New("invalid period selection")
	ErrInvalidView      = errors.New("invalid view, expected day, week or month")
)
