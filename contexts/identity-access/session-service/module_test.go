package sessionservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sessionservice "youthhub/contexts/identity-access/session-service"
	"youthhub/contexts/identity-access/session-service/domain/entities"
	domainerrors "youthhub/contexts/identity-access/session-service/domain/errors"
	"youthhub/contexts/identity-access/session-service/ports"
)

func TestResolveProvisionsStudentProfileOnFirstSignIn(t *testing.T) {
	module := sessionservice.NewInMemoryModule(nil)
	module.Verifier.Register("token-1", ports.Claims{
		UserID:   "user-1",
		Email:    "student@example.com",
		FullName: "Sample Student",
	})

	actor, err := module.Service.Resolve(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if actor.UserID != "user-1" {
		t.Fatalf("expected user-1, got %s", actor.UserID)
	}
	if actor.Role != entities.RoleStudent {
		t.Fatalf("first sign-in must provision the student role, got %s", actor.Role)
	}
	if actor.IsAdmin() {
		t.Fatalf("student must not be admin")
	}

	profile, err := module.Store.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("profile lookup failed: %v", err)
	}
	if profile.Email != "student@example.com" {
		t.Fatalf("expected claim email stored, got %s", profile.Email)
	}
}

func TestResolveKeepsExistingProfile(t *testing.T) {
	module := sessionservice.NewInMemoryModule(nil)
	module.Verifier.Register("token-1", ports.Claims{UserID: "user-1", Email: "student@example.com"})

	first, err := module.Service.Resolve(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}

	module.Store.SetRole("user-1", entities.RoleAdmin)

	second, err := module.Service.Resolve(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if first.Role != entities.RoleStudent || second.Role != entities.RoleAdmin {
		t.Fatalf("expected role change to surface on next resolve, got %s then %s", first.Role, second.Role)
	}
}

func TestResolveRejectsUnknownToken(t *testing.T) {
	module := sessionservice.NewInMemoryModule(nil)

	if _, err := module.Service.Resolve(context.Background(), "forged"); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if _, err := module.Service.Resolve(context.Background(), ""); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for empty token, got %v", err)
	}
}

func TestProfileSurfacesSchoolAndGrade(t *testing.T) {
	module := sessionservice.NewInMemoryModule(nil)
	module.Verifier.Register("token-1", ports.Claims{UserID: "user-1", Email: "student@example.com"})

	school := "Dubai International Academy"
	grade := "11"
	err := module.Store.Create(context.Background(), entities.Profile{
		UserID:    "user-1",
		Email:     "student@example.com",
		Role:      entities.RoleStudent,
		School:    &school,
		Grade:     &grade,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed profile failed: %v", err)
	}

	actor, err := module.Service.Resolve(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	resp, err := module.Handler.MeHandler(context.Background(), actor)
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if resp.Item.School == nil || *resp.Item.School != school {
		t.Fatalf("expected school %q, got %v", school, resp.Item.School)
	}
	if resp.Item.Grade == nil || *resp.Item.Grade != grade {
		t.Fatalf("expected grade %q, got %v", grade, resp.Item.Grade)
	}
}

func TestProfileRequiresAuthenticatedActor(t *testing.T) {
	module := sessionservice.NewInMemoryModule(nil)

	if _, err := module.Service.Profile(context.Background(), ports.Actor{}); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}
