// Package migrations embeds the schema files and runs them through goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var schemaFS embed.FS

func newProvider(db *sql.DB) (*goose.Provider, error) {
	sub, err := fs.Sub(schemaFS, "sql")
	if err != nil {
		return nil, fmt.Errorf("migrations: sub filesystem: %w", err)
	}
	p, err := goose.NewProvider(goose.DialectMySQL, db, sub)
	if err != nil {
		return nil, fmt.Errorf("migrations: provider: %w", err)
	}
	return p, nil
}

// Up applies all pending migrations.
func Up(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	p, err := newProvider(db)
	if err != nil {
		return err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrations: up: %w", err)
	}
	for _, r := range results {
		logger.Info().
			Str("source", r.Source.Path).
			Dur("duration", r.Duration).
			Msg("migrated")
	}
	return nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	p, err := newProvider(db)
	if err != nil {
		return err
	}
	r, err := p.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrations: down: %w", err)
	}
	logger.Info().
		Str("source", r.Source.Path).
		Dur("duration", r.Duration).
		Msg("rolled back")
	return nil
}

// Status logs the applied/pending state of every known migration.
func Status(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	p, err := newProvider(db)
	if err != nil {
		return err
	}
	statuses, err := p.Status(ctx)
	if err != nil {
		return fmt.Errorf("migrations: status: %w", err)
	}
	for _, s := range statuses {
		state := "pending"
		if s.State == goose.StateApplied {
			state = "applied"
		}
		logger.Info().
			Str("source", s.Source.Path).
			Str("state", state).
			Msg("migration")
	}
	return nil
}
