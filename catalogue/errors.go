package catalogue

import "errors"

var (
	ErrStopNotFound  = errors.New("stop not found")
	ErrBusNotFound   = errors.New("bus not found")
	ErrDuplicateStop = errors.New("stop already exists")
	ErrDuplicateBus  = errors.New("bus already exists")
	ErrEmptyName     = errors.New("name must not be empty")
	ErrNegativeDist  = errors.New("distance must not be negative")
)
