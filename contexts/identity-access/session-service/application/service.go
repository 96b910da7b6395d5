package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"youthhub/contexts/identity-access/session-service/domain/entities"
	domainerrors "youthhub/contexts/identity-access/session-service/domain/errors"
	"youthhub/contexts/identity-access/session-service/ports"
)

type Service struct {
	Verifier ports.TokenVerifier
	Profiles ports.ProfileRepository
	Cache    ports.ProfileCache
	Clock    ports.Clock
	Logger   *slog.Logger
}

// Resolve turns a raw bearer token into an Actor. The first resolve for a
// user creates their profile with the student role; admin is never derived
// from token claims.
func (s Service) Resolve(ctx context.Context, token string) (ports.Actor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ports.Actor{}, domainerrors.ErrUnauthenticated
	}

	claims, err := s.Verifier.Verify(ctx, token)
	if err != nil {
		return ports.Actor{}, err
	}

	if cached, ok := s.Cache.Get(claims.UserID); ok {
		return actorFromProfile(cached), nil
	}

	profile, err := s.Profiles.Get(ctx, claims.UserID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		profile, err = s.provisionProfile(ctx, claims)
	}
	if err != nil {
		return ports.Actor{}, err
	}

	s.Cache.Set(profile)
	return actorFromProfile(profile), nil
}

// Profile returns the stored profile for an already resolved actor.
func (s Service) Profile(ctx context.Context, actor ports.Actor) (entities.Profile, error) {
	if !actor.Authenticated() {
		return entities.Profile{}, domainerrors.ErrUnauthenticated
	}
	return s.Profiles.Get(ctx, actor.UserID)
}

func (s Service) provisionProfile(ctx context.Context, claims ports.Claims) (entities.Profile, error) {
	profile := entities.Profile{
		UserID:    claims.UserID,
		Email:     strings.TrimSpace(claims.Email),
		FullName:  strings.TrimSpace(claims.FullName),
		Role:      entities.RoleStudent,
		CreatedAt: s.Clock.Now().UTC(),
	}
	if err := s.Profiles.Create(ctx, profile); err != nil {
		return entities.Profile{}, err
	}

	resolveLogger(s.Logger).Info("profile provisioned on first sign-in",
		"event", "session_profile_provisioned",
		"module", "identity-access/session-service",
		"layer", "application",
		"user_id", claims.UserID,
	)

	// Re-read after create so a concurrent first sign-in still yields the
	// winning row.
	return s.Profiles.Get(ctx, claims.UserID)
}

func actorFromProfile(profile entities.Profile) ports.Actor {
	return ports.Actor{
		UserID: profile.UserID,
		Email:  profile.Email,
		Role:   profile.Role,
	}
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
