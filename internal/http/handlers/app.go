package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"foodbridge/internal/adapter/repo"
	"foodbridge/internal/domain"
	"foodbridge/internal/infra"
)

// App bundles the dependencies the HTTP handlers share.
type App struct {
	DB        *sql.DB
	SQL       infra.SQLExecutor
	Logger    infra.Logger
	Listings  domain.ListingRepository
	Providers domain.ProviderRepository
	Receivers domain.ReceiverRepository
	Analytics domain.AnalyticsRepository
}

// NewApp wires the repositories over one shared marker-audited SQL runner.
func NewApp(db *sql.DB, logger infra.Logger) *App {
	runner := infra.NewSQLRunner(db, logger)
	return &App{
		DB:        db,
		SQL:       runner,
		Logger:    logger,
		Listings:  repo.NewListingRepository(runner),
		Providers: repo.NewProviderRepository(runner),
		Receivers: repo.NewReceiverRepository(runner),
		Analytics: repo.NewAnalyticsRepository(runner),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
