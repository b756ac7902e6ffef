package parser

import "errors"

var (
	// ErrNotUpdate indicates the post has none of the update keywords.
	ErrNotUpdate = errors.New("not an update post")

	ErrNoGroups    = errors.New("no groups found in update")
	ErrNoIntervals = errors.New("no intervals found in update")
)
