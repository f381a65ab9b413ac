package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"coffee-assistant/internal/outlet"
	repo "coffee-assistant/internal/outlet/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS outlets (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL UNIQUE,
	area         TEXT NOT NULL,
	city         TEXT NOT NULL,
	address      TEXT NOT NULL,
	opening_time TEXT NOT NULL,
	closing_time TEXT NOT NULL,
	summary      TEXT NOT NULL DEFAULT '',
	services     TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_outlets_area ON outlets(area);
CREATE INDEX IF NOT EXISTS idx_outlets_city ON outlets(city);`

const selectColumns = `id, name, area, city, address, opening_time, closing_time, summary, services`

func (r *implRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
		return repo.ErrFailedToMigrate
	}
	return nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM outlets`).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Count"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}

// Insert writes all outlets in one transaction. Existing names are skipped.
func (r *implRepository) Insert(ctx context.Context, outlets []outlet.Outlet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Insert"), err)
		return repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const query = `
		INSERT OR IGNORE INTO outlets (name, area, city, address, opening_time, closing_time, summary, services)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	for _, o := range outlets {
		services, err := json.Marshal(o.Services)
		if err != nil {
			return repo.ErrFailedToInsert
		}
		if _, err := tx.ExecContext(ctx, query,
			o.Name, o.Area, o.City, o.Address, o.OpeningTime, o.ClosingTime, o.Summary, string(services),
		); err != nil {
			r.l.Errorf(ctx, "%s %s: %v", r.dsn("Insert"), o.Name, err)
			return repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Insert"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) GetByArea(ctx context.Context, area string) (outlet.Outlet, error) {
	query := `SELECT ` + selectColumns + ` FROM outlets WHERE area = ? COLLATE NOCASE ORDER BY id LIMIT 1`

	var (
		o        outlet.Outlet
		services string
	)
	err := r.db.QueryRowContext(ctx, query, area).Scan(
		&o.ID, &o.Name, &o.Area, &o.City, &o.Address, &o.OpeningTime, &o.ClosingTime, &o.Summary, &services,
	)
	if err == sql.ErrNoRows {
		return outlet.Outlet{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByArea"), err)
		return outlet.Outlet{}, repo.ErrFailedToGet
	}
	o.Services = decodeServices(services)
	return o, nil
}

func (r *implRepository) ListByCity(ctx context.Context, city string) ([]outlet.Outlet, error) {
	query := `SELECT ` + selectColumns + ` FROM outlets WHERE city = ? COLLATE NOCASE ORDER BY id`
	return r.list(ctx, "ListByCity", query, city)
}

func (r *implRepository) Search(ctx context.Context, term string) ([]outlet.Outlet, error) {
	query := `SELECT ` + selectColumns + ` FROM outlets WHERE name LIKE ? OR address LIKE ? ORDER BY id`
	pattern := "%" + term + "%"
	return r.list(ctx, "Search", query, pattern, pattern)
}

func (r *implRepository) Select(ctx context.Context, statement string) ([]outlet.Outlet, error) {
	rows, err := r.db.QueryContext(ctx, statement)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("Select"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, repo.ErrFailedToList
	}

	var outlets []outlet.Outlet
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			r.l.Warnf(ctx, "%s scan: %v", r.dsn("Select"), err)
			return nil, repo.ErrFailedToList
		}
		outlets = append(outlets, fromColumns(cols, values))
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return outlets, nil
}

func (r *implRepository) list(ctx context.Context, method, query string, args ...any) ([]outlet.Outlet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var outlets []outlet.Outlet
	for rows.Next() {
		var (
			o        outlet.Outlet
			services string
		)
		if err := rows.Scan(&o.ID, &o.Name, &o.Area, &o.City, &o.Address, &o.OpeningTime, &o.ClosingTime, &o.Summary, &services); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		o.Services = decodeServices(services)
		outlets = append(outlets, o)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return outlets, nil
}
