package note

import "errors"

// Domain errors for the note package.
var (
	// ErrNotFound covers every resolution miss: malformed path, unknown category,
	// no match, private note, category mismatch and listing failure alike.
	ErrNotFound = errors.New("note not found")
	// ErrAmbiguous means more than one public note in the category shares the suffix.
	ErrAmbiguous       = errors.New("share suffix matches more than one note")
	ErrInvalidCategory = errors.New("invalid category")
	ErrUnauthenticated = errors.New("sign in required")
	ErrEmptyComment    = errors.New("comment text is empty")
)
