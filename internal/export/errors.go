package export

import "errors"

var (
	ErrStorageDisabled = errors.New("export storage is not configured")
	ErrInvalidKind     = errors.New("invalid export kind")
	ErrUploadFailed    = errors.New("export upload failed")
	ErrPresignFailed   = errors.New("export download url failed")
)
