package converter

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("file not found")
	ErrDecode            = errors.New("decode failed")
	ErrDeviceUnavailable = errors.New("capture device unavailable")
)
