package repository

import "errors"

var (
	ErrFailedToMigrate = errors.New("failed to migrate outlets")
	ErrFailedToInsert  = errors.New("failed to insert outlets")
	ErrFailedToGet     = errors.New("failed to get outlet")
	ErrFailedToList    = errors.New("failed to list outlets")
)
