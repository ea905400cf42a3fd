package models

import "errors"

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a uniqueness constraint is violated.
var ErrDuplicate = errors.New("duplicate")
