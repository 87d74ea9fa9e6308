package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"foodbridge/internal/domain"
)

type actorRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"` // providers only
	Contact string `json:"contact"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type actorPatchRequest struct {
	Name    *string `json:"name"`
	Type    *string `json:"type"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
	City    *string `json:"city"`
}

type providerDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type,omitempty"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type receiverDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type contactDTO struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

func (a *App) ProvidersCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := a.decodeActor(w, r)
	if !ok {
		return
	}
	id, err := a.Providers.Create(r.Context(), in)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": id})
}

func (a *App) ProvidersList(w http.ResponseWriter, r *http.Request) {
	city, limit, offset, ok := a.actorListParams(w, r)
	if !ok {
		return
	}
	items, err := a.Providers.List(r.Context(), city, limit, offset)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	dtos := make([]providerDTO, 0, len(items))
	for _, p := range items {
		dtos = append(dtos, providerDTO{
			ID: p.ID, Name: p.Name, Type: p.Type, Contact: p.Contact,
			Address: p.Address, City: p.City, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": dtos, "count": len(dtos)})
}

func (a *App) ProvidersGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	p, err := a.Providers.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, providerDTO{
		ID: p.ID, Name: p.Name, Type: p.Type, Contact: p.Contact,
		Address: p.Address, City: p.City, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	})
}

func (a *App) ProvidersUpdate(w http.ResponseWriter, r *http.Request) {
	a.actorUpdate(w, r, a.Providers.Update)
}

func (a *App) ProvidersDelete(w http.ResponseWriter, r *http.Request) {
	a.actorDelete(w, r, a.Providers.Delete)
}

func (a *App) ProvidersContact(w http.ResponseWriter, r *http.Request) {
	a.actorContact(w, r, a.Providers.Contact)
}

func (a *App) ReceiversCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := a.decodeActor(w, r)
	if !ok {
		return
	}
	id, err := a.Receivers.Create(r.Context(), in)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": id})
}

func (a *App) ReceiversList(w http.ResponseWriter, r *http.Request) {
	city, limit, offset, ok := a.actorListParams(w, r)
	if !ok {
		return
	}
	items, err := a.Receivers.List(r.Context(), city, limit, offset)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	dtos := make([]receiverDTO, 0, len(items))
	for _, rec := range items {
		dtos = append(dtos, receiverDTO{
			ID: rec.ID, Name: rec.Name, Contact: rec.Contact,
			Address: rec.Address, City: rec.City, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": dtos, "count": len(dtos)})
}

func (a *App) ReceiversGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	rec, err := a.Receivers.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, receiverDTO{
		ID: rec.ID, Name: rec.Name, Contact: rec.Contact,
		Address: rec.Address, City: rec.City, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt,
	})
}

func (a *App) ReceiversUpdate(w http.ResponseWriter, r *http.Request) {
	a.actorUpdate(w, r, a.Receivers.Update)
}

func (a *App) ReceiversDelete(w http.ResponseWriter, r *http.Request) {
	a.actorDelete(w, r, a.Receivers.Delete)
}

func (a *App) ReceiversContact(w http.ResponseWriter, r *http.Request) {
	a.actorContact(w, r, a.Receivers.Contact)
}

func (a *App) decodeActor(w http.ResponseWriter, r *http.Request) (*domain.ActorInput, bool) {
	var req actorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request", "")
		return nil, false
	}
	return &domain.ActorInput{
		Name:    req.Name,
		Type:    req.Type,
		Contact: req.Contact,
		Address: req.Address,
		City:    req.City,
	}, true
}

func (a *App) actorListParams(w http.ResponseWriter, r *http.Request) (city string, limit, offset int, ok bool) {
	q := r.URL.Query()
	city = q.Get("city")
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			a.error(w, r, http.StatusBadRequest, "validation_failed", "limit: must be a number")
			return "", 0, 0, false
		}
		limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			a.error(w, r, http.StatusBadRequest, "validation_failed", "offset: must be a number")
			return "", 0, 0, false
		}
		offset = n
	}
	return city, limit, offset, true
}

func (a *App) actorUpdate(w http.ResponseWriter, r *http.Request, update func(ctx context.Context, id int64, patch *domain.ActorPatch) error) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req actorPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request", "")
		return
	}
	patch := domain.ActorPatch{
		Name:    req.Name,
		Type:    req.Type,
		Contact: req.Contact,
		Address: req.Address,
		City:    req.City,
	}
	if err := update(r.Context(), id, &patch); err != nil {
		a.domainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) actorDelete(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id int64) error) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if err := del(r.Context(), id); err != nil {
		a.domainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) actorContact(w http.ResponseWriter, r *http.Request, lookup func(ctx context.Context, id int64) (*domain.Contact, error)) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	c, err := lookup(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, contactDTO{Name: c.Name, Contact: c.Contact, Address: c.Address})
}
