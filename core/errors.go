package core

import "errors"

var (
	// ErrInvalidArgument is returned when nil is passed to an add operation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateItem is returned when an item or object is added twice.
	ErrDuplicateItem = errors.New("duplicate item")
	// ErrInvalidState is returned for selections on empty menus, out of range
	// indices and viewport capacities below one.
	ErrInvalidState = errors.New("invalid state")
)
