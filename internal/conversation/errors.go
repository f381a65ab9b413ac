package conversation

import "errors"

var (
	ErrEmptySessionID  = errors.New("session id is empty")
	ErrSessionNotFound = errors.New("session not found")
)
