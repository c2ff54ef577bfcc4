// Package schema holds the relational layout of the marketplace database.
package schema

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
)

//go:embed schema.sql
var DDL string

// Apply creates missing tables and indexes. It is safe to run repeatedly.
func Apply(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, DDL)
	logger.Log.Infow("schema applied", "error", err)
	return err
}
