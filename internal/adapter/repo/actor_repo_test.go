package repo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodbridge/internal/domain"
	"foodbridge/internal/infra"
)

func newActorRepos(t *testing.T) (*ProviderRepositoryMySQL, *ReceiverRepositoryMySQL, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	runner := infra.NewSQLRunner(db, zerolog.Nop())
	return NewProviderRepository(runner), NewReceiverRepository(runner), mock
}

func TestProviderCreateNormalizesCity(t *testing.T) {
	providers, _, mock := newActorRepos(t)

	mock.ExpectExec("insert into providers").
		WithArgs("Fresh Mart", "Supermarket", "+91-1234", "1 Main St", "New Delhi").
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := providers.Create(context.Background(), &domain.ActorInput{
		Name:    " Fresh Mart ",
		Type:    "Supermarket",
		Contact: "+91-1234",
		Address: "1 Main St",
		City:    "new   delhi",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderCreateRequiresName(t *testing.T) {
	providers, _, mock := newActorRepos(t)

	_, err := providers.Create(context.Background(), &domain.ActorInput{Contact: "x", City: "Pune"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiverListFiltersByCity(t *testing.T) {
	_, receivers, mock := newActorRepos(t)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "contact", "address", "city", "created_at", "updated_at"}).
		AddRow(int64(1), "Shelter A", "+91-9999", "5 Lake Rd", "Pune", now, now)

	mock.ExpectQuery("select (.+) from receivers where city = \\? order by name asc, id asc limit \\? offset \\?").
		WithArgs("Pune", 50, 0).
		WillReturnRows(rows)

	items, err := receivers.List(context.Background(), "pune", 50, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Shelter A", items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderUpdateNoOpProbesExistence(t *testing.T) {
	providers, _, mock := newActorRepos(t)

	name := "Fresh Mart"
	mock.ExpectExec("update providers set name = \\?, updated_at = now\\(\\) where id = \\?").
		WithArgs(name, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("select id from providers").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	err := providers.Update(context.Background(), 3, &domain.ActorPatch{Name: &name})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiverUpdateMissingRowReturnsNotFound(t *testing.T) {
	_, receivers, mock := newActorRepos(t)

	contact := "+91-5555"
	mock.ExpectExec("update receivers").
		WithArgs(contact, int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("select id from receivers").
		WithArgs(int64(8)).
		WillReturnError(sql.ErrNoRows)

	err := receivers.Update(context.Background(), 8, &domain.ActorPatch{Contact: &contact})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiverUpdateIgnoresProviderOnlyType(t *testing.T) {
	_, receivers, mock := newActorRepos(t)

	typ := "NGO"
	err := receivers.Update(context.Background(), 8, &domain.ActorPatch{Type: &typ})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderContact(t *testing.T) {
	providers, _, mock := newActorRepos(t)

	mock.ExpectQuery("select name, contact, address from providers").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "contact", "address"}).
			AddRow("Fresh Mart", "+91-1234", "1 Main St"))

	c, err := providers.Contact(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, &domain.Contact{Name: "Fresh Mart", Contact: "+91-1234", Address: "1 Main St"}, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderDeleteMissingRowReturnsNotFound(t *testing.T) {
	providers, _, mock := newActorRepos(t)

	mock.ExpectExec("delete from providers").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := providers.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
