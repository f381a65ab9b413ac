package sqlite

import (
	"database/sql"
	"fmt"

	"coffee-assistant/internal/outlet/repository"
	"coffee-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed outlet Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("outlet/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("internal.outlet.repository.sqlite.%s", method)
}
