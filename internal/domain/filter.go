package domain

import (
	"strings"
	"time"
)

// DefaultListLimit bounds an unrestricted read so an empty filter can never
// pull the whole table across the wire.
const DefaultListLimit = 500

// ListingFilter selects listings. The zero value matches everything up to
// DefaultListLimit rows. Role scopes the read to one actor: provider+ActorID
// filters by provider_id, receiver+ActorID by receiver_id.
type ListingFilter struct {
	Role             Role
	ActorID          int64
	FoodType         string
	MealType         string
	LocationContains string
	Status           Status
	ExpiresBefore    *time.Time
	ExpiresAfter     *time.Time
	Limit            int
	Offset           int
}

// Normalize clamps the paging bounds and normalizes the text criteria.
// It returns a copy; the caller's filter is untouched.
func (f ListingFilter) Normalize() ListingFilter {
	if f.Limit <= 0 || f.Limit > DefaultListLimit {
		f.Limit = DefaultListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	f.FoodType = strings.TrimSpace(f.FoodType)
	f.MealType = strings.TrimSpace(f.MealType)
	f.LocationContains = NormalizeCity(f.LocationContains)
	return f
}

// Validate rejects criteria the query renderer would otherwise silently
// misapply.
func (f ListingFilter) Validate() error {
	if f.Role != "" {
		if _, err := ParseRole(string(f.Role)); err != nil {
			return err
		}
		if f.ActorID <= 0 {
			return invalid("actor_id", "required when role is set")
		}
	}
	if f.Status != "" && !f.Status.Valid() {
		return invalid("status", "must be one of available, claimed, expired, removed")
	}
	// both bounds are exclusive, so equal dates leave nothing between them
	if f.ExpiresBefore != nil && f.ExpiresAfter != nil && !f.ExpiresBefore.After(*f.ExpiresAfter) {
		return invalid("expires_before", "window is empty: expires_before must follow expires_after")
	}
	return nil
}
