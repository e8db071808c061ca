package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an id that does not resolve to a record.
var ErrNotFound = errors.New("not found")

// ErrDuplicateCategory reports a category name collision on create.
var ErrDuplicateCategory = errors.New("category name already exists")

// ValidationError carries field-level messages detected before any
// persistence attempt.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// CategoryInUseError blocks deletion of a category that inventory items
// still reference by name.
type CategoryInUseError struct {
	ItemCount int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("cannot delete category with %d items, reassign or delete these items first", e.ItemCount)
}
