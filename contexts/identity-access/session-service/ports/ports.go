package ports

import (
	"context"
	"time"

	"youthhub/contexts/identity-access/session-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// Claims is the identity asserted by a verified session token.
type Claims struct {
	UserID   string
	Email    string
	FullName string
}

// TokenVerifier checks a raw bearer token and returns its claims. A token
// that fails verification for any reason yields ErrUnauthenticated.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (entities.Profile, error)
	// Create stores the profile; creating an existing user is a no-op so two
	// racing first sign-ins cannot fail.
	Create(ctx context.Context, profile entities.Profile) error
}

// ProfileCache keeps resolved profiles hot between requests. Entries expire;
// a role change becomes visible after at most the cache TTL.
type ProfileCache interface {
	Get(userID string) (entities.Profile, bool)
	Set(profile entities.Profile)
}

// Actor is the resolved caller handed to the rest of the system.
type Actor struct {
	UserID string
	Email  string
	Role   entities.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == entities.RoleAdmin
}

func (a Actor) Authenticated() bool {
	return a.UserID != ""
}
