package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
)

func TestMapStoreErrorMarksBackendOutagesTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"deadline exceeded", context.DeadlineExceeded},
		{"wrapped deadline", fmt.Errorf("query: %w", context.DeadlineExceeded)},
		{"connection failure", &pgconn.PgError{Code: "08006"}},
		{"cannot connect", &pgconn.PgError{Code: "08001"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapStoreError(tc.err); !errors.Is(got, domainerrors.ErrTransient) {
				t.Fatalf("expected transient, got %v", got)
			}
		})
	}
}

func TestMapStoreErrorPassesOtherErrorsThrough(t *testing.T) {
	original := &pgconn.PgError{Code: "23505"}
	if got := mapStoreError(original); got != error(original) {
		t.Fatalf("expected pass-through, got %v", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("expected 23505 to read as a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "08006"}) {
		t.Fatalf("connection failure must not read as a unique violation")
	}
	if isUniqueViolation(errors.New("plain")) {
		t.Fatalf("non-pg error must not read as a unique violation")
	}
}
