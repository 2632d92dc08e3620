package location

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrLocationExists   = errors.New("location name already exists")
)
