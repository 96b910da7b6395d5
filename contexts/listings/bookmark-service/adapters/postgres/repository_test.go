package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	domainerrors "youthhub/contexts/listings/bookmark-service/domain/errors"
)

func TestMapStoreErrorMarksBackendOutagesTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"deadline exceeded", context.DeadlineExceeded},
		{"wrapped deadline", fmt.Errorf("delete: %w", context.DeadlineExceeded)},
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
	original := &pgconn.PgError{Code: "42P01"}
	if got := mapStoreError(original); got != error(original) {
		t.Fatalf("expected pass-through, got %v", got)
	}
}
