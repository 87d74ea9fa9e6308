package domain

import (
	"context"
	"time"
)

// ListingRepository defines persistence for food listings.
type ListingRepository interface {
	Create(ctx context.Context, in *ListingInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*Listing, error)
	List(ctx context.Context, filter ListingFilter) ([]Listing, error)
	Update(ctx context.Context, id int64, patch *ListingPatch) error
	Claim(ctx context.Context, id, receiverID int64) error
	Delete(ctx context.Context, id int64) error
	ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

// ProviderRepository defines persistence for providers.
type ProviderRepository interface {
	Create(ctx context.Context, in *ActorInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*Provider, error)
	List(ctx context.Context, city string, limit, offset int) ([]Provider, error)
	Update(ctx context.Context, id int64, patch *ActorPatch) error
	Delete(ctx context.Context, id int64) error
	Contact(ctx context.Context, id int64) (*Contact, error)
}

// ReceiverRepository defines persistence for receivers.
type ReceiverRepository interface {
	Create(ctx context.Context, in *ActorInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*Receiver, error)
	List(ctx context.Context, city string, limit, offset int) ([]Receiver, error)
	Update(ctx context.Context, id int64, patch *ActorPatch) error
	Delete(ctx context.Context, id int64) error
	Contact(ctx context.Context, id int64) (*Contact, error)
}

// AnalyticsRepository runs the named read-only reports.
type AnalyticsRepository interface {
	Reports() []Report
	Run(ctx context.Context, name, param string) (*ReportResult, error)
	RunSelect(ctx context.Context, query string) (*ReportResult, error)
}
