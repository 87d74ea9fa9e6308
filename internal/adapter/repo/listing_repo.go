package repo

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"foodbridge/internal/domain"
	"foodbridge/internal/infra"
	"foodbridge/internal/sqlinline"
)

// ListingRepositoryMySQL implements ListingRepository over the shared pool.
// Every operation is a single round trip on the happy path; only the failure
// path of a guarded update issues a diagnostic read.
type ListingRepositoryMySQL struct {
	sql infra.SQLExecutor
}

// NewListingRepository creates a new listing repo.
func NewListingRepository(executor infra.SQLExecutor) *ListingRepositoryMySQL {
	return &ListingRepositoryMySQL{sql: executor}
}

// Create inserts a new listing with status forced to available.
func (r *ListingRepositoryMySQL) Create(ctx context.Context, in *domain.ListingInput) (int64, error) {
	in.Normalize()
	if err := in.Validate(time.Now()); err != nil {
		return 0, err
	}
	res, err := r.sql.Exec(ctx, sqlinline.QInsertListing,
		in.FoodName, in.FoodType, in.MealType, in.Quantity,
		domain.DateOnly(in.ExpiryDate), in.ProviderID, in.Location)
	if err != nil {
		return 0, fkViolation(err, "provider_id")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID returns a single listing or ErrNotFound.
func (r *ListingRepositoryMySQL) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectListing, id)
	listing, err := scanListing(row)
	if err != nil {
		return nil, classify(err)
	}
	return listing, nil
}

// List runs a parameterized read ordered by expiry_date, soonest first. An
// empty result is an empty slice, not an error; each call re-runs the query.
func (r *ListingRepositoryMySQL) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	f := filter.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	query, args := buildListingsQuery(f)
	rows, err := r.sql.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	items := make([]domain.Listing, 0, 16)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return items, nil
}

// Update applies a partial field merge in one guarded UPDATE. When zero rows
// change, a diagnostic read splits not-found from invariant violations.
func (r *ListingRepositoryMySQL) Update(ctx context.Context, id int64, patch *domain.ListingPatch) error {
	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return err
	}

	set := make([]string, 0, 8)
	args := make([]any, 0, 10)
	if patch.FoodName != nil {
		set, args = append(set, "food_name = ?"), append(args, *patch.FoodName)
	}
	if patch.FoodType != nil {
		set, args = append(set, "food_type = ?"), append(args, *patch.FoodType)
	}
	if patch.MealType != nil {
		set, args = append(set, "meal_type = ?"), append(args, *patch.MealType)
	}
	if patch.Quantity != nil {
		set, args = append(set, "quantity = ?"), append(args, *patch.Quantity)
	}
	if patch.ExpiryDate != nil {
		set, args = append(set, "expiry_date = ?"), append(args, domain.DateOnly(*patch.ExpiryDate))
	}
	if patch.ProviderID != nil {
		set, args = append(set, "provider_id = ?"), append(args, *patch.ProviderID)
	}
	if patch.Location != nil {
		set, args = append(set, "location = ?"), append(args, *patch.Location)
	}
	if patch.Status != nil {
		set, args = append(set, "status = ?"), append(args, *patch.Status)
	}
	set = append(set, "updated_at = now()")

	conds := []string{"id = ?"}
	args = append(args, id)
	if patch.Status != nil && *patch.Status != domain.StatusRemoved {
		// only available rows may move (or restate) a non-removed status
		conds = append(conds, "status = 'available'")
	}
	if patch.ExpiryDate != nil {
		conds = append(conds, "? >= date(created_at)")
		args = append(args, domain.DateOnly(*patch.ExpiryDate))
	}

	query := sqlinline.QUpdateListingBase +
		"\nset " + strings.Join(set, ", ") +
		"\nwhere " + strings.Join(conds, " and ")
	res, err := r.sql.Exec(ctx, query, args...)
	if err != nil {
		return fkViolation(err, "provider_id")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return r.diagnoseUpdateMiss(ctx, id, patch)
	}
	return nil
}

// diagnoseUpdateMiss explains a zero-row guarded update: the row is gone, a
// guard rejected it, or the patch restated the stored values verbatim.
func (r *ListingRepositoryMySQL) diagnoseUpdateMiss(ctx context.Context, id int64, patch *domain.ListingPatch) error {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if patch.Status != nil && !domain.TransitionAllowed(cur.Status, *patch.Status) {
		return domain.ErrInvalidTransition
	}
	if patch.ExpiryDate != nil && domain.DateOnly(*patch.ExpiryDate).Before(domain.DateOnly(cur.CreatedAt)) {
		return &domain.ValidationError{Field: "expiry_date", Reason: "must not precede the creation date"}
	}
	// the row matched but nothing changed
	return nil
}

// Claim moves an available listing to claimed and binds the receiver, all in
// one guarded UPDATE.
func (r *ListingRepositoryMySQL) Claim(ctx context.Context, id, receiverID int64) error {
	if receiverID <= 0 {
		return &domain.ValidationError{Field: "receiver_id", Reason: "required"}
	}
	res, err := r.sql.Exec(ctx, sqlinline.QClaimListing, receiverID, id)
	if err != nil {
		return fkViolation(err, "receiver_id")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// Delete removes the row permanently. Deleting twice yields ErrNotFound on
// the second call.
func (r *ListingRepositoryMySQL) Delete(ctx context.Context, id int64) error {
	res, err := r.sql.Exec(ctx, sqlinline.QDeleteListing, id)
	if err != nil {
		return classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExpireOverdue marks available listings past their expiry date as expired
// and reports how many rows moved.
func (r *ListingRepositoryMySQL) ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	res, err := r.sql.Exec(ctx, sqlinline.QExpireOverdue, domain.DateOnly(asOf))
	if err != nil {
		return 0, classify(err)
	}
	return res.RowsAffected()
}

func buildListingsQuery(f domain.ListingFilter) (string, []any) {
	var conds []string
	var args []any

	switch f.Role {
	case domain.RoleProvider:
		conds, args = append(conds, "provider_id = ?"), append(args, f.ActorID)
	case domain.RoleReceiver:
		conds, args = append(conds, "receiver_id = ?"), append(args, f.ActorID)
	}
	if f.FoodType != "" {
		conds, args = append(conds, "food_type = ?"), append(args, f.FoodType)
	}
	if f.MealType != "" {
		conds, args = append(conds, "meal_type = ?"), append(args, f.MealType)
	}
	if f.LocationContains != "" {
		conds, args = append(conds, "location like ?"), append(args, "%"+f.LocationContains+"%")
	}
	if f.Status != "" {
		conds, args = append(conds, "status = ?"), append(args, f.Status)
	}
	if f.ExpiresBefore != nil {
		conds, args = append(conds, "expiry_date < ?"), append(args, domain.DateOnly(*f.ExpiresBefore))
	}
	if f.ExpiresAfter != nil {
		conds, args = append(conds, "expiry_date > ?"), append(args, domain.DateOnly(*f.ExpiresAfter))
	}

	query := sqlinline.QListListingsBase
	if len(conds) > 0 {
		query += "\nwhere " + strings.Join(conds, " and ")
	}
	query += "\norder by expiry_date asc, id asc\nlimit ? offset ?"
	args = append(args, f.Limit, f.Offset)
	return query, args
}

func scanListing(row infra.Row) (*domain.Listing, error) {
	var l domain.Listing
	var receiverID sql.NullInt64
	var claimedAt sql.NullTime
	err := row.Scan(&l.ID, &l.FoodName, &l.FoodType, &l.MealType, &l.Quantity,
		&l.ExpiryDate, &l.ProviderID, &receiverID, &l.Location, &l.Status,
		&claimedAt, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if receiverID.Valid {
		l.ReceiverID = &receiverID.Int64
	}
	if claimedAt.Valid {
		l.ClaimedAt = &claimedAt.Time
	}
	return &l, nil
}

var _ domain.ListingRepository = (*ListingRepositoryMySQL)(nil)
