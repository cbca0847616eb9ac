// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollserver/models"
)

// Database types accepted by LoadDatabase, mapped to driver names.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

var drivers = map[string]string{
	TypeSQLite:   "sqlite",
	TypePostgres: "postgres",
}

const selectPolls = `SELECT id, question FROM polls ORDER BY id`

// LoadDatabase opens the database, reads the polls table once and closes
// the connection again.
func LoadDatabase(ctx context.Context, dbType, url string) (*Collection, error) {
	driver, ok := drivers[dbType]
	if !ok {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	return LoadSQL(ctx, db)
}

// LoadSQL builds a Collection from the polls table of an open database.
func LoadSQL(ctx context.Context, db *sql.DB) (*Collection, error) {
	rows, err := db.QueryContext(ctx, selectPolls)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Question); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}

	return New(polls...)
}
