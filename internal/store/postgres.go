package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// PostgresBackend stores the snapshot as one jsonb document per collection,
// mirroring the document-database deployment of the original system.
type PostgresBackend struct {
	db       *sql.DB
	readOnly bool
}

// NewPostgresBackend ensures the collections table exists and returns the
// backend. The caller owns the *sql.DB and its lifecycle.
func NewPostgresBackend(ctx context.Context, db *sql.DB, readOnly bool) (*PostgresBackend, error) {
	if !readOnly {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS collections (
				name    text PRIMARY KEY,
				records jsonb NOT NULL
			)`)
		if err != nil {
			return nil, fmt.Errorf("ensure collections table: %w", err)
		}
	}
	return &PostgresBackend{db: db, readOnly: readOnly}, nil
}

// Load reads every collection row into a snapshot. Collections without a row
// stay empty; an unreadable store loads as an empty database.
func (b *PostgresBackend) Load(ctx context.Context) (*domain.Database, error) {
	db := domain.NewDatabase()
	rows, err := b.db.QueryContext(ctx, `SELECT name, records FROM collections`)
	if err != nil {
		return db, nil
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var raw []byte
		if err := rows.Scan(&name, &raw); err != nil {
			continue
		}
		switch name {
		case "customers":
			_ = json.Unmarshal(raw, &db.Customers)
		case "products":
			_ = json.Unmarshal(raw, &db.Products)
		case "orders":
			_ = json.Unmarshal(raw, &db.Orders)
		case "inventory":
			_ = json.Unmarshal(raw, &db.Inventory)
		case "costs":
			_ = json.Unmarshal(raw, &db.Costs)
		case "jobs":
			_ = json.Unmarshal(raw, &db.Jobs)
		}
	}
	return db, nil
}

// Save upserts all six collections inside a single transaction so the
// durable snapshot is replaced whole or not at all.
func (b *PostgresBackend) Save(ctx context.Context, db *domain.Database) error {
	if b.readOnly {
		return ErrReadOnly
	}
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	defer tx.Rollback()

	collections := []struct {
		name    string
		records any
	}{
		{"customers", db.Customers},
		{"products", db.Products},
		{"orders", db.Orders},
		{"inventory", db.Inventory},
		{"costs", db.Costs},
		{"jobs", db.Jobs},
	}
	for _, c := range collections {
		raw, err := json.Marshal(c.records)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrWriteFailed, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO collections (name, records) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET records = EXCLUDED.records`,
			c.name, raw)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrWriteFailed, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	return nil
}
