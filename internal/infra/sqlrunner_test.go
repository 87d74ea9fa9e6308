package infra

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
)

func TestExtractMarker(t *testing.T) {
	marker, trimmed, err := extractMarker("--sql f245d48d-aa54-48ec-ad4c-04fafbd69c73\nselect 1")
	if err != nil {
		t.Fatalf("extractMarker returned error: %v", err)
	}
	if marker != "f245d48d-aa54-48ec-ad4c-04fafbd69c73" {
		t.Fatalf("marker mismatch: %q", marker)
	}
	if strings.TrimSpace(trimmed) != "select 1" {
		t.Fatalf("trimmed mismatch: %q", trimmed)
	}
}

func TestExtractMarkerRejectsUnmarkedSQL(t *testing.T) {
	for _, query := range []string{"select 1", "--sql not-a-uuid\nselect 1", ""} {
		if _, _, err := extractMarker(query); err == nil {
			t.Fatalf("expected error for %q", query)
		}
	}
}

func TestSQLRunnerStripsMarkerBeforeExecution(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("delete from listings").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewSQLRunner(db, zerolog.Nop())
	res, err := runner.Exec(context.Background(), "--sql 37bb011a-18c6-4b84-a965-45d38516d5bb\ndelete from listings where id = ?", int64(7))
	if err != nil {
		t.Fatalf("Exec returned error: %v", err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		t.Fatalf("RowsAffected = %d, want 1", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unfulfilled expectations: %v", err)
	}
}

func TestSQLRunnerRefusesUnmarkedQuery(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	runner := NewSQLRunner(db, zerolog.Nop())
	if _, err := runner.Exec(context.Background(), "delete from listings"); err == nil {
		t.Fatal("expected marker error")
	}
	if err := runner.QueryRow(context.Background(), "select 1").Scan(new(int)); err == nil {
		t.Fatal("expected marker error from QueryRow")
	}
}
