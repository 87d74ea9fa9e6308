package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"foodbridge/internal/domain"
)

const dateLayout = "2006-01-02"

type listingCreateRequest struct {
	FoodName   string `json:"food_name"`
	FoodType   string `json:"food_type"`
	MealType   string `json:"meal_type"`
	Quantity   int    `json:"quantity"`
	ExpiryDate string `json:"expiry_date"` // YYYY-MM-DD
	ProviderID int64  `json:"provider_id"`
	Location   string `json:"location"`
}

type listingPatchRequest struct {
	FoodName   *string `json:"food_name"`
	FoodType   *string `json:"food_type"`
	MealType   *string `json:"meal_type"`
	Quantity   *int    `json:"quantity"`
	ExpiryDate *string `json:"expiry_date"`
	ProviderID *int64  `json:"provider_id"`
	Location   *string `json:"location"`
	Status     *string `json:"status"`
}

type listingClaimRequest struct {
	ReceiverID int64 `json:"receiver_id"`
}

type listingDTO struct {
	ID         int64      `json:"id"`
	FoodName   string     `json:"food_name"`
	FoodType   string     `json:"food_type"`
	MealType   string     `json:"meal_type,omitempty"`
	Quantity   int        `json:"quantity"`
	ExpiryDate string     `json:"expiry_date"`
	ProviderID int64      `json:"provider_id"`
	ReceiverID *int64     `json:"receiver_id,omitempty"`
	Location   string     `json:"location"`
	Status     string     `json:"status"`
	ClaimedAt  *time.Time `json:"claimed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func listingToDTO(l *domain.Listing) listingDTO {
	return listingDTO{
		ID:         l.ID,
		FoodName:   l.FoodName,
		FoodType:   l.FoodType,
		MealType:   l.MealType,
		Quantity:   l.Quantity,
		ExpiryDate: l.ExpiryDate.Format(dateLayout),
		ProviderID: l.ProviderID,
		ReceiverID: l.ReceiverID,
		Location:   l.Location,
		Status:     string(l.Status),
		ClaimedAt:  l.ClaimedAt,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func (a *App) ListingsCreate(w http.ResponseWriter, r *http.Request) {
	var req listingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request", "")
		return
	}
	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		a.error(w, r, http.StatusBadRequest, "validation_failed", "expiry_date: must be YYYY-MM-DD")
		return
	}

	id, err := a.Listings.Create(r.Context(), &domain.ListingInput{
		FoodName:   req.FoodName,
		FoodType:   req.FoodType,
		MealType:   req.MealType,
		Quantity:   req.Quantity,
		ExpiryDate: expiry,
		ProviderID: req.ProviderID,
		Location:   req.Location,
	})
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": id})
}

func (a *App) ListingsList(w http.ResponseWriter, r *http.Request) {
	filter, err := listingFilterFromQuery(r)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	items, err := a.Listings.List(r.Context(), filter)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	dtos := make([]listingDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, listingToDTO(&items[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": dtos, "count": len(dtos)})
}

func (a *App) ListingsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	listing, err := a.Listings.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, listingToDTO(listing))
}

func (a *App) ListingsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req listingPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request", "")
		return
	}

	patch := domain.ListingPatch{
		FoodName:   req.FoodName,
		FoodType:   req.FoodType,
		MealType:   req.MealType,
		Quantity:   req.Quantity,
		ProviderID: req.ProviderID,
		Location:   req.Location,
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse(dateLayout, *req.ExpiryDate)
		if err != nil {
			a.error(w, r, http.StatusBadRequest, "validation_failed", "expiry_date: must be YYYY-MM-DD")
			return
		}
		patch.ExpiryDate = &expiry
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			a.domainError(w, r, err)
			return
		}
		patch.Status = &status
	}

	if err := a.Listings.Update(r.Context(), id, &patch); err != nil {
		a.domainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) ListingsDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if err := a.Listings.Delete(r.Context(), id); err != nil {
		a.domainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) ListingsClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req listingClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request", "")
		return
	}
	if err := a.Listings.Claim(r.Context(), id, req.ReceiverID); err != nil {
		a.domainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func listingFilterFromQuery(r *http.Request) (domain.ListingFilter, error) {
	q := r.URL.Query()
	var f domain.ListingFilter

	if v := q.Get("role"); v != "" {
		role, err := domain.ParseRole(v)
		if err != nil {
			return f, err
		}
		f.Role = role
		actorID, err := strconv.ParseInt(q.Get("actor_id"), 10, 64)
		if err != nil {
			return f, &domain.ValidationError{Field: "actor_id", Reason: "must be a numeric id"}
		}
		f.ActorID = actorID
	}
	if v := q.Get("status"); v != "" {
		status, err := domain.ParseStatus(v)
		if err != nil {
			return f, err
		}
		f.Status = status
	}
	f.FoodType = q.Get("food_type")
	f.MealType = q.Get("meal_type")
	f.LocationContains = q.Get("location")

	if v := q.Get("expires_before"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, &domain.ValidationError{Field: "expires_before", Reason: "must be YYYY-MM-DD"}
		}
		f.ExpiresBefore = &t
	}
	if v := q.Get("expires_after"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, &domain.ValidationError{Field: "expires_after", Reason: "must be YYYY-MM-DD"}
		}
		f.ExpiresAfter = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, &domain.ValidationError{Field: "limit", Reason: "must be a number"}
		}
		f.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, &domain.ValidationError{Field: "offset", Reason: "must be a number"}
		}
		f.Offset = n
	}
	return f, nil
}

// pathID parses the {id} route parameter and reports the failure itself.
func (a *App) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.error(w, r, http.StatusBadRequest, "validation_failed", "id: must be a positive number")
		return 0, false
	}
	return id, true
}
