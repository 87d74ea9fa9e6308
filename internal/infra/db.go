package infra

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const (
	pingAttempts  = 5
	pingBaseDelay = 500 * time.Millisecond
)

// NewDB opens the MySQL connection pool and verifies reachability with a
// bounded exponential backoff on the initial ping. Per-request statements do
// not retry; a query runs to completion or surfaces the driver error.
func NewDB(ctx context.Context, cfg *Config) (*sql.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	numCPU := runtime.NumCPU()
	db.SetMaxOpenConns(numCPU * 4)
	db.SetMaxIdleConns(numCPU * 2)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(30 * time.Minute)

	delay := pingBaseDelay
	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return db, nil
		}
		if attempt >= pingAttempts {
			break
		}
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("connect database: %w", ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}

	_ = db.Close()
	return nil, fmt.Errorf("connect database after %d attempts: %w", pingAttempts, err)
}
