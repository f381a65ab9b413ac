package product

import "errors"

var (
	ErrEmptyQuery  = errors.New("query is required")
	ErrUnavailable = errors.New("product index is unavailable")
)
