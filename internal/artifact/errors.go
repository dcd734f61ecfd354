package artifact

import "errors"

var (
	ErrNotFound        = errors.New("artifact not found")
	ErrInvalidFilename = errors.New("invalid artifact filename")
	ErrUnknownKind     = errors.New("unknown artifact kind")
)
