package salarycategory

import "errors"

var (
	ErrCategoryNotFound = errors.New("salary category not found")
	ErrCategoryExists   = errors.New("salary category name already exists")
)
