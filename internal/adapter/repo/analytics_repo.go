package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"foodbridge/internal/domain"
	"foodbridge/internal/infra"
	"foodbridge/internal/sqlinline"
)

type reportSpec struct {
	name        string
	description string
	param       string
	query       string
}

// The registry mirrors the analysis screens of the legacy dashboard. Order
// is the order the API lists them in.
var reportRegistry = []reportSpec{
	{"city-overview", "Providers and receivers per city", "", sqlinline.QReportCityOverview},
	{"top-provider-types", "Provider types by total donated quantity", "", sqlinline.QReportTopProviderTypes},
	{"provider-contacts-by-city", "Provider contact cards for one city", "city", sqlinline.QReportProviderContactsByCity},
	{"top-receivers", "Receivers by total claimed quantity", "", sqlinline.QReportTopReceivers},
	{"total-available-quantity", "Sum of quantity across available listings", "", sqlinline.QReportTotalAvailableQuantity},
	{"busiest-city", "City with the most listings", "", sqlinline.QReportBusiestCity},
	{"top-food-types", "Most listed food types", "", sqlinline.QReportTopFoodTypes},
	{"claims-per-food", "Claimed listings per food name", "", sqlinline.QReportClaimsPerFood},
	{"top-provider-by-claims", "Provider with the most claimed listings", "", sqlinline.QReportTopProviderByClaims},
	{"status-breakdown", "Listing counts and share per status", "", sqlinline.QReportStatusBreakdown},
	{"avg-claimed-quantity-per-receiver", "Average claimed quantity per receiver", "", sqlinline.QReportAvgClaimedQuantityPerReceiver},
	{"most-claimed-meal-type", "Meal types ranked by claims", "", sqlinline.QReportMostClaimedMealType},
	{"donations-per-provider", "Total donated quantity per provider", "", sqlinline.QReportDonationsPerProvider},
	{"top-cities-by-claimed-quantity", "Cities ranked by claimed quantity", "", sqlinline.QReportTopCitiesByClaimedQuantity},
	{"providers-with-most-listings", "Providers ranked by listing count", "", sqlinline.QReportProvidersWithMostListings},
	{"expiring-soon", "Available listings expiring within two days", "", sqlinline.QReportExpiringSoon},
}

// AnalyticsRepositoryMySQL runs the named read-only reports and ad hoc
// SELECT statements for the playground.
type AnalyticsRepositoryMySQL struct {
	sql infra.SQLExecutor
}

// NewAnalyticsRepository creates a new analytics repo.
func NewAnalyticsRepository(executor infra.SQLExecutor) *AnalyticsRepositoryMySQL {
	return &AnalyticsRepositoryMySQL{sql: executor}
}

// Reports returns the registry in listing order.
func (r *AnalyticsRepositoryMySQL) Reports() []domain.Report {
	out := make([]domain.Report, 0, len(reportRegistry))
	for _, spec := range reportRegistry {
		out = append(out, domain.Report{Name: spec.name, Description: spec.description, Param: spec.param})
	}
	return out
}

// Run executes the named report. Reports that declare a parameter require a
// non-empty param value.
func (r *AnalyticsRepositoryMySQL) Run(ctx context.Context, name, param string) (*domain.ReportResult, error) {
	spec, ok := findReport(name)
	if !ok {
		return nil, fmt.Errorf("report %q: %w", name, domain.ErrNotFound)
	}

	var args []any
	switch {
	case spec.param != "" && param == "":
		return nil, &domain.ValidationError{Field: spec.param, Reason: "required for this report"}
	case spec.param != "":
		args = append(args, domain.NormalizeCity(param))
	case param != "":
		return nil, &domain.ValidationError{Field: "param", Reason: "this report takes no parameter"}
	}

	rows, err := r.sql.Query(ctx, spec.query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	return collectRows(rows)
}

// RunSelect executes a caller-supplied statement under a one-off audit
// marker. The caller is responsible for guarding the statement; this layer
// only runs and decodes it.
func (r *AnalyticsRepositoryMySQL) RunSelect(ctx context.Context, query string) (*domain.ReportResult, error) {
	marked := "--sql " + uuid.NewString() + "\n" + query
	rows, err := r.sql.Query(ctx, marked)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	return collectRows(rows)
}

func findReport(name string) (reportSpec, bool) {
	for _, spec := range reportRegistry {
		if spec.name == name {
			return spec, true
		}
	}
	return reportSpec{}, false
}

// collectRows decodes a result set into generic columns and rows. []byte
// cells become strings so the result encodes as JSON text, not base64.
func collectRows(rows *sql.Rows) (*domain.ReportResult, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &domain.ReportResult{Columns: cols, Rows: make([][]any, 0, 16)}
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, cell := range cells {
			switch v := cell.(type) {
			case []byte:
				cells[i] = string(v)
			case time.Time:
				cells[i] = v.UTC().Format(time.RFC3339)
			}
		}
		result.Rows = append(result.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return result, nil
}

var _ domain.AnalyticsRepository = (*AnalyticsRepositoryMySQL)(nil)
