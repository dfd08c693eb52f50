package collection

import "errors"

// ErrNotFound is returned when no record matches the given title.
var ErrNotFound = errors.New("book not found")

// ErrEmptyTitle is returned when a record without a title is added.
var ErrEmptyTitle = errors.New("title must not be empty")

// Progress summarizes how much of the collection has been read.
type Progress struct {
	Total      int
	Read       int
	Percentage float64
}
