package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"foodbridge/internal/domain"
)

// fakeListings implements domain.ListingRepository with per-test callbacks.
type fakeListings struct {
	create  func(ctx context.Context, in *domain.ListingInput) (int64, error)
	getByID func(ctx context.Context, id int64) (*domain.Listing, error)
	list    func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	update  func(ctx context.Context, id int64, patch *domain.ListingPatch) error
	claim   func(ctx context.Context, id, receiverID int64) error
	delete  func(ctx context.Context, id int64) error
	expire  func(ctx context.Context, asOf time.Time) (int64, error)
}

func (f *fakeListings) Create(ctx context.Context, in *domain.ListingInput) (int64, error) {
	return f.create(ctx, in)
}

func (f *fakeListings) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	return f.getByID(ctx, id)
}

func (f *fakeListings) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	return f.list(ctx, filter)
}

func (f *fakeListings) Update(ctx context.Context, id int64, patch *domain.ListingPatch) error {
	return f.update(ctx, id, patch)
}

func (f *fakeListings) Claim(ctx context.Context, id, receiverID int64) error {
	return f.claim(ctx, id, receiverID)
}

func (f *fakeListings) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

func (f *fakeListings) ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	return f.expire(ctx, asOf)
}

// fakeAnalytics implements domain.AnalyticsRepository.
type fakeAnalytics struct {
	reports   func() []domain.Report
	run       func(ctx context.Context, name, param string) (*domain.ReportResult, error)
	runSelect func(ctx context.Context, query string) (*domain.ReportResult, error)
}

func (f *fakeAnalytics) Reports() []domain.Report { return f.reports() }

func (f *fakeAnalytics) Run(ctx context.Context, name, param string) (*domain.ReportResult, error) {
	return f.run(ctx, name, param)
}

func (f *fakeAnalytics) RunSelect(ctx context.Context, query string) (*domain.ReportResult, error) {
	return f.runSelect(ctx, query)
}

func testApp() *App {
	return &App{Logger: zerolog.Nop()}
}

// newRequest builds a request carrying the given chi route params so that
// handlers can be exercised without mounting a full router.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}
