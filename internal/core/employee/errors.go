package employee

import "errors"

var (
	ErrInvalidID       = errors.New("employee: invalid id")
	ErrInvalidName     = errors.New("employee: invalid name")
	ErrInvalidRate     = errors.New("employee: invalid rate")
	ErrInvalidCount    = errors.New("employee: invalid count")
	ErrInvalidKind     = errors.New("employee: invalid kind")
	ErrIDAlreadyExists = errors.New("employee: id already exists")
	ErrRegistryFull    = errors.New("employee: registry is full")
	ErrPayOverflow     = errors.New("employee: pay is out of range")
)
