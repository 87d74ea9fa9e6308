package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodbridge/internal/domain"
	"foodbridge/internal/middleware"
)

func TestAnalyticsReports(t *testing.T) {
	app := testApp()
	app.Analytics = &fakeAnalytics{
		reports: func() []domain.Report {
			return []domain.Report{
				{Name: "listings-by-status", Description: "listing counts per status"},
				{Name: "provider-contacts-by-city", Description: "provider contact cards in a city", Param: "city"},
			}
		},
	}

	rec := httptest.NewRecorder()
	app.AnalyticsReports(rec, newRequest(http.MethodGet, "/v1/analytics/reports", "", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Items []reportDTO `json:"items"`
		Count int         `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 2, got.Count)
	assert.Equal(t, "listings-by-status", got.Items[0].Name)
	assert.Equal(t, "city", got.Items[1].Param)
}

func TestAnalyticsRun(t *testing.T) {
	app := testApp()
	app.Analytics = &fakeAnalytics{
		run: func(_ context.Context, name, param string) (*domain.ReportResult, error) {
			assert.Equal(t, "provider-contacts-by-city", name)
			assert.Equal(t, "Bandung", param)
			return &domain.ReportResult{
				Columns: []string{"name", "contact"},
				Rows:    [][]any{{"Warung Sehat", "0812-0000"}},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := newRequest(http.MethodGet, "/v1/analytics/reports/provider-contacts-by-city?city=Bandung", "",
		map[string]string{"name": "provider-contacts-by-city"})
	app.AnalyticsRun(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Report  string   `json:"report"`
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "provider-contacts-by-city", got.Report)
	assert.Equal(t, []string{"name", "contact"}, got.Columns)
	require.Len(t, got.Rows, 1)
}

func TestAnalyticsRunUnknown(t *testing.T) {
	app := testApp()
	app.Analytics = &fakeAnalytics{
		run: func(_ context.Context, name, _ string) (*domain.ReportResult, error) {
			return nil, fmt.Errorf("report %q: %w", name, domain.ErrNotFound)
		},
	}

	rec := httptest.NewRecorder()
	req := newRequest(http.MethodGet, "/v1/analytics/reports/nope", "", map[string]string{"name": "nope"})
	app.AnalyticsRun(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorMessagesLocalized(t *testing.T) {
	app := testApp()
	app.Listings = &fakeListings{
		getByID: func(context.Context, int64) (*domain.Listing, error) {
			return nil, domain.ErrNotFound
		},
	}

	req := newRequest(http.MethodGet, "/v1/listings/9", "", map[string]string{"id": "9"})
	req = req.WithContext(context.WithValue(req.Context(), middleware.LocaleKey, "id"))

	rec := httptest.NewRecorder()
	app.ListingsGet(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "not_found", got.Error.Code)
	assert.Equal(t, "data tidak ditemukan", got.Error.Message)
}
