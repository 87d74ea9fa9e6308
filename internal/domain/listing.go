package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status enumerates the listing lifecycle states.
type Status string

const (
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
	StatusExpired   Status = "expired"
	StatusRemoved   Status = "removed"
)

// ParseStatus maps caller input onto a Status value.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusClaimed:
		return StatusClaimed, nil
	case StatusExpired:
		return StatusExpired, nil
	case StatusRemoved:
		return StatusRemoved, nil
	}
	return "", invalid("status", "must be one of available, claimed, expired, removed")
}

// Valid reports whether s is a known lifecycle state.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusClaimed, StatusExpired, StatusRemoved:
		return true
	}
	return false
}

// TransitionAllowed encodes the lifecycle: available→claimed,
// available→expired, any→removed; nothing leaves removed. Re-stating the
// current available state is a harmless no-op and passes.
func TransitionAllowed(from, to Status) bool {
	switch to {
	case StatusRemoved:
		return true
	case StatusAvailable, StatusClaimed, StatusExpired:
		return from == StatusAvailable
	}
	return false
}

// Listing is a surplus food donation published by a provider and, once
// claimed, bound to a receiver.
type Listing struct {
	ID         int64
	FoodName   string
	FoodType   string
	MealType   string
	Quantity   int
	ExpiryDate time.Time
	ProviderID int64
	ReceiverID *int64
	Location   string
	Status     Status
	ClaimedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ListingInput carries the caller-supplied fields for creating a listing.
// The store assigns id, status and the timestamps.
type ListingInput struct {
	FoodName   string
	FoodType   string
	MealType   string
	Quantity   int
	ExpiryDate time.Time
	ProviderID int64
	Location   string
}

// Normalize trims the free-text fields and title-cases the location so
// city-based grouping stays stable regardless of input casing.
func (in *ListingInput) Normalize() {
	in.FoodName = strings.TrimSpace(in.FoodName)
	in.FoodType = strings.TrimSpace(in.FoodType)
	in.MealType = strings.TrimSpace(in.MealType)
	in.Location = NormalizeCity(in.Location)
}

// Validate enforces the creation invariants. now anchors the expiry check.
func (in *ListingInput) Validate(now time.Time) error {
	if in.FoodName == "" {
		return invalid("food_name", "required")
	}
	if in.FoodType == "" {
		return invalid("food_type", "required")
	}
	if in.Location == "" {
		return invalid("location", "required")
	}
	if in.ProviderID <= 0 {
		return invalid("provider_id", "required")
	}
	if in.Quantity < 0 {
		return invalid("quantity", "must not be negative")
	}
	if in.ExpiryDate.IsZero() {
		return invalid("expiry_date", "required")
	}
	if in.ExpiryDate.Before(DateOnly(now)) {
		return invalid("expiry_date", "must not precede the creation date")
	}
	return nil
}

// ListingPatch is a partial update; nil fields keep their stored value.
type ListingPatch struct {
	FoodName   *string
	FoodType   *string
	MealType   *string
	Quantity   *int
	ExpiryDate *time.Time
	ProviderID *int64
	Location   *string
	Status     *Status
}

// Empty reports whether the patch carries no field at all.
func (p *ListingPatch) Empty() bool {
	return p.FoodName == nil && p.FoodType == nil && p.MealType == nil &&
		p.Quantity == nil && p.ExpiryDate == nil && p.ProviderID == nil &&
		p.Location == nil && p.Status == nil
}

// Normalize mirrors ListingInput.Normalize for the fields that are set.
func (p *ListingPatch) Normalize() {
	if p.FoodName != nil {
		*p.FoodName = strings.TrimSpace(*p.FoodName)
	}
	if p.FoodType != nil {
		*p.FoodType = strings.TrimSpace(*p.FoodType)
	}
	if p.MealType != nil {
		*p.MealType = strings.TrimSpace(*p.MealType)
	}
	if p.Location != nil {
		*p.Location = NormalizeCity(*p.Location)
	}
}

// Validate enforces the statically checkable invariants. Transition and
// expiry-versus-creation checks need the stored row; the store guards them.
func (p *ListingPatch) Validate() error {
	if p.Empty() {
		return invalid("fields", "no fields to update")
	}
	if p.FoodName != nil && *p.FoodName == "" {
		return invalid("food_name", "must not be blank")
	}
	if p.FoodType != nil && *p.FoodType == "" {
		return invalid("food_type", "must not be blank")
	}
	if p.Location != nil && *p.Location == "" {
		return invalid("location", "must not be blank")
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return invalid("quantity", "must not be negative")
	}
	if p.ProviderID != nil && *p.ProviderID <= 0 {
		return invalid("provider_id", "must reference a provider")
	}
	if p.ExpiryDate != nil && p.ExpiryDate.IsZero() {
		return invalid("expiry_date", "must be a calendar date")
	}
	if p.Status != nil && !p.Status.Valid() {
		return invalid("status", "must be one of available, claimed, expired, removed")
	}
	// claimed binds a receiver and a claim timestamp; only Claim may set it
	if p.Status != nil && *p.Status == StatusClaimed {
		return invalid("status", "claiming requires a receiver; use the claim operation")
	}
	return nil
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeCity collapses whitespace and title-cases a city or location
// name ("  new   york " → "New York").
func NormalizeCity(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	c := cases.Title(language.Und)
	return c.String(strings.ToLower(s))
}
