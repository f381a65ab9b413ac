package outlet

import "errors"

var (
	ErrEmptyQuery  = errors.New("query is required")
	ErrUnsafeQuery = errors.New("generated statement is not a read-only outlet query")
	ErrUnavailable = errors.New("outlet store is unavailable")
)
