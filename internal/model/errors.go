package model

import "errors"

// ErrNotFound is returned by stores when no row matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned by stores when an insert violates a
// uniqueness constraint.
var ErrDuplicate = errors.New("duplicate")
