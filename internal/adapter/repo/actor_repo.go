package repo

import (
	"context"
	"strings"

	"foodbridge/internal/domain"
	"foodbridge/internal/infra"
	"foodbridge/internal/sqlinline"
)

// ProviderRepositoryMySQL implements ProviderRepository over the shared pool.
type ProviderRepositoryMySQL struct {
	sql infra.SQLExecutor
}

// NewProviderRepository creates a new provider repo.
func NewProviderRepository(executor infra.SQLExecutor) *ProviderRepositoryMySQL {
	return &ProviderRepositoryMySQL{sql: executor}
}

func (r *ProviderRepositoryMySQL) Create(ctx context.Context, in *domain.ActorInput) (int64, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return 0, err
	}
	res, err := r.sql.Exec(ctx, sqlinline.QInsertProvider,
		in.Name, in.Type, in.Contact, in.Address, in.City)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

func (r *ProviderRepositoryMySQL) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	var p domain.Provider
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProvider, id)
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Contact, &p.Address, &p.City, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return &p, nil
}

func (r *ProviderRepositoryMySQL) List(ctx context.Context, city string, limit, offset int) ([]domain.Provider, error) {
	query, args := actorListQuery(sqlinline.QListProvidersBase, city, limit, offset)
	rows, err := r.sql.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	items := make([]domain.Provider, 0, 16)
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Contact, &p.Address, &p.City, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return items, nil
}

func (r *ProviderRepositoryMySQL) Update(ctx context.Context, id int64, patch *domain.ActorPatch) error {
	return execActorUpdate(ctx, r.sql, sqlinline.QUpdateProviderBase, id, patch, true)
}

func (r *ProviderRepositoryMySQL) Delete(ctx context.Context, id int64) error {
	return execActorDelete(ctx, r.sql, sqlinline.QDeleteProvider, id)
}

func (r *ProviderRepositoryMySQL) Contact(ctx context.Context, id int64) (*domain.Contact, error) {
	return scanContact(r.sql.QueryRow(ctx, sqlinline.QProviderContact, id))
}

// ReceiverRepositoryMySQL implements ReceiverRepository over the shared pool.
type ReceiverRepositoryMySQL struct {
	sql infra.SQLExecutor
}

// NewReceiverRepository creates a new receiver repo.
func NewReceiverRepository(executor infra.SQLExecutor) *ReceiverRepositoryMySQL {
	return &ReceiverRepositoryMySQL{sql: executor}
}

func (r *ReceiverRepositoryMySQL) Create(ctx context.Context, in *domain.ActorInput) (int64, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return 0, err
	}
	res, err := r.sql.Exec(ctx, sqlinline.QInsertReceiver,
		in.Name, in.Contact, in.Address, in.City)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

func (r *ReceiverRepositoryMySQL) GetByID(ctx context.Context, id int64) (*domain.Receiver, error) {
	var rec domain.Receiver
	row := r.sql.QueryRow(ctx, sqlinline.QSelectReceiver, id)
	err := row.Scan(&rec.ID, &rec.Name, &rec.Contact, &rec.Address, &rec.City, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return &rec, nil
}

func (r *ReceiverRepositoryMySQL) List(ctx context.Context, city string, limit, offset int) ([]domain.Receiver, error) {
	query, args := actorListQuery(sqlinline.QListReceiversBase, city, limit, offset)
	rows, err := r.sql.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	items := make([]domain.Receiver, 0, 16)
	for rows.Next() {
		var rec domain.Receiver
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Contact, &rec.Address, &rec.City, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return items, nil
}

func (r *ReceiverRepositoryMySQL) Update(ctx context.Context, id int64, patch *domain.ActorPatch) error {
	return execActorUpdate(ctx, r.sql, sqlinline.QUpdateReceiverBase, id, patch, false)
}

func (r *ReceiverRepositoryMySQL) Delete(ctx context.Context, id int64) error {
	return execActorDelete(ctx, r.sql, sqlinline.QDeleteReceiver, id)
}

func (r *ReceiverRepositoryMySQL) Contact(ctx context.Context, id int64) (*domain.Contact, error) {
	return scanContact(r.sql.QueryRow(ctx, sqlinline.QReceiverContact, id))
}

func actorListQuery(base, city string, limit, offset int) (string, []any) {
	if limit <= 0 || limit > domain.DefaultListLimit {
		limit = domain.DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	query := base
	var args []any
	if city = domain.NormalizeCity(city); city != "" {
		query += "\nwhere city = ?"
		args = append(args, city)
	}
	query += "\norder by name asc, id asc\nlimit ? offset ?"
	args = append(args, limit, offset)
	return query, args
}

func execActorUpdate(ctx context.Context, executor infra.SQLExecutor, base string, id int64, patch *domain.ActorPatch, withType bool) error {
	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return err
	}

	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	if patch.Name != nil {
		set, args = append(set, "name = ?"), append(args, *patch.Name)
	}
	if withType && patch.Type != nil {
		set, args = append(set, "type = ?"), append(args, *patch.Type)
	}
	if patch.Contact != nil {
		set, args = append(set, "contact = ?"), append(args, *patch.Contact)
	}
	if patch.Address != nil {
		set, args = append(set, "address = ?"), append(args, *patch.Address)
	}
	if patch.City != nil {
		set, args = append(set, "city = ?"), append(args, *patch.City)
	}
	if len(set) == 0 {
		return &domain.ValidationError{Field: "fields", Reason: "no fields to update"}
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	query := base + "\nset " + strings.Join(set, ", ") + "\nwhere id = ?"
	res, err := executor.Exec(ctx, query, args...)
	if err != nil {
		return classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// either absent or an identical no-op patch
		probe := sqlinline.QProviderExists
		if base == sqlinline.QUpdateReceiverBase {
			probe = sqlinline.QReceiverExists
		}
		var exists int64
		if err := executor.QueryRow(ctx, probe, id).Scan(&exists); err != nil {
			return classify(err)
		}
	}
	return nil
}

func execActorDelete(ctx context.Context, executor infra.SQLExecutor, query string, id int64) error {
	res, err := executor.Exec(ctx, query, id)
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

func scanContact(row infra.Row) (*domain.Contact, error) {
	var c domain.Contact
	if err := row.Scan(&c.Name, &c.Contact, &c.Address); err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

var (
	_ domain.ProviderRepository = (*ProviderRepositoryMySQL)(nil)
	_ domain.ReceiverRepository = (*ReceiverRepositoryMySQL)(nil)
)
