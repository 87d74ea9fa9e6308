package domain

import (
	"errors"
	"testing"
	"time"
)

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"available to claimed", StatusAvailable, StatusClaimed, true},
		{"available to expired", StatusAvailable, StatusExpired, true},
		{"available to removed", StatusAvailable, StatusRemoved, true},
		{"claimed to removed", StatusClaimed, StatusRemoved, true},
		{"expired to removed", StatusExpired, StatusRemoved, true},
		{"claimed to available", StatusClaimed, StatusAvailable, false},
		{"claimed to expired", StatusClaimed, StatusExpired, false},
		{"expired to claimed", StatusExpired, StatusClaimed, false},
		{"removed to available", StatusRemoved, StatusAvailable, false},
		{"removed to claimed", StatusRemoved, StatusClaimed, false},
		{"removed stays removed", StatusRemoved, StatusRemoved, true},
		{"available restated", StatusAvailable, StatusAvailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransitionAllowed(tt.from, tt.to); got != tt.want {
				t.Fatalf("TransitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestListingInputValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	valid := func() ListingInput {
		return ListingInput{
			FoodName:   "Bread",
			FoodType:   "Bakery",
			MealType:   "Breakfast",
			Quantity:   10,
			ExpiryDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			ProviderID: 1,
			Location:   "Chennai",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*ListingInput)
		wantField string
	}{
		{"valid input", func(in *ListingInput) {}, ""},
		{"expiry today", func(in *ListingInput) {
			in.ExpiryDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		}, ""},
		{"missing food name", func(in *ListingInput) { in.FoodName = "" }, "food_name"},
		{"missing food type", func(in *ListingInput) { in.FoodType = "" }, "food_type"},
		{"missing location", func(in *ListingInput) { in.Location = "" }, "location"},
		{"missing provider", func(in *ListingInput) { in.ProviderID = 0 }, "provider_id"},
		{"negative quantity", func(in *ListingInput) { in.Quantity = -1 }, "quantity"},
		{"zero expiry", func(in *ListingInput) { in.ExpiryDate = time.Time{} }, "expiry_date"},
		{"expiry in the past", func(in *ListingInput) {
			in.ExpiryDate = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
		}, "expiry_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			err := in.Validate(now)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.wantField {
				t.Fatalf("expected field %q, got %v", tt.wantField, err)
			}
		})
	}
}

func TestListingPatchValidate(t *testing.T) {
	negative := -3
	blank := ""
	bogus := Status("recycled")

	if err := (&ListingPatch{}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty patch: expected validation error, got %v", err)
	}
	if err := (&ListingPatch{Quantity: &negative}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("negative quantity: expected validation error, got %v", err)
	}
	if err := (&ListingPatch{FoodName: &blank}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank food name: expected validation error, got %v", err)
	}
	if err := (&ListingPatch{Status: &bogus}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown status: expected validation error, got %v", err)
	}

	claimed := StatusClaimed
	err := (&ListingPatch{Status: &claimed}).Validate()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("claimed via patch: expected validation error, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "status" {
		t.Fatalf("claimed via patch: expected status field, got %v", err)
	}

	expired := StatusExpired
	if err := (&ListingPatch{Status: &expired}).Validate(); err != nil {
		t.Fatalf("expired-status patch returned error: %v", err)
	}

	five := 5
	if err := (&ListingPatch{Quantity: &five}).Validate(); err != nil {
		t.Fatalf("quantity-only patch returned error: %v", err)
	}
}

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  new   york ", "New York"},
		{"CHENNAI", "Chennai"},
		{"kuala lumpur", "Kuala Lumpur"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeCity(tt.in); got != tt.want {
			t.Fatalf("NormalizeCity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListingFilterNormalize(t *testing.T) {
	f := ListingFilter{Limit: 0, Offset: -2, LocationContains: " east  side "}
	got := f.Normalize()
	if got.Limit != DefaultListLimit {
		t.Fatalf("Limit = %d, want %d", got.Limit, DefaultListLimit)
	}
	if got.Offset != 0 {
		t.Fatalf("Offset = %d, want 0", got.Offset)
	}
	if got.LocationContains != "East Side" {
		t.Fatalf("LocationContains = %q", got.LocationContains)
	}

	g := ListingFilter{Limit: 9000}.Normalize()
	if g.Limit != DefaultListLimit {
		t.Fatalf("oversized Limit = %d, want %d", g.Limit, DefaultListLimit)
	}
	h := ListingFilter{Limit: 25}.Normalize()
	if h.Limit != 25 {
		t.Fatalf("explicit Limit = %d, want 25", h.Limit)
	}
}

func TestListingFilterValidate(t *testing.T) {
	before := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	after := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	if err := (ListingFilter{}).Validate(); err != nil {
		t.Fatalf("empty filter returned error: %v", err)
	}
	if err := (ListingFilter{Role: RoleProvider}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("role without actor id: expected validation error, got %v", err)
	}
	if err := (ListingFilter{Role: "admin", ActorID: 1}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown role: expected validation error, got %v", err)
	}
	if err := (ListingFilter{Status: "recycled"}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown status: expected validation error, got %v", err)
	}
	if err := (ListingFilter{ExpiresBefore: &before, ExpiresAfter: &after}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("inverted window: expected validation error, got %v", err)
	}
	if err := (ListingFilter{ExpiresBefore: &before, ExpiresAfter: &before}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("equal bounds: expected validation error, got %v", err)
	}
	if err := (ListingFilter{ExpiresBefore: &after, ExpiresAfter: &before}).Validate(); err != nil {
		t.Fatalf("proper window returned error: %v", err)
	}
	if err := (ListingFilter{Role: RoleReceiver, ActorID: 7, Status: StatusClaimed}).Validate(); err != nil {
		t.Fatalf("valid filter returned error: %v", err)
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(" Provider "); err != nil || r != RoleProvider {
		t.Fatalf("ParseRole(Provider) = %v, %v", r, err)
	}
	if r, err := ParseRole("RECEIVER"); err != nil || r != RoleReceiver {
		t.Fatalf("ParseRole(RECEIVER) = %v, %v", r, err)
	}
	if _, err := ParseRole("admin"); !errors.Is(err, ErrValidation) {
		t.Fatalf("ParseRole(admin): expected validation error, got %v", err)
	}
}
