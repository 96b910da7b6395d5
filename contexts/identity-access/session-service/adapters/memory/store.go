package memory

import (
	"context"
	"sync"
	"time"

	"youthhub/contexts/identity-access/session-service/domain/entities"
	domainerrors "youthhub/contexts/identity-access/session-service/domain/errors"
	"youthhub/contexts/identity-access/session-service/ports"
)

// Store is the in-memory profile repository used by tests and local
// development. It also satisfies Clock.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]entities.Profile
}

func NewStore() *Store {
	return &Store{
		profiles: make(map[string]entities.Profile),
	}
}

func (s *Store) Get(ctx context.Context, userID string) (entities.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return entities.Profile{}, domainerrors.ErrNotFound
	}
	return profile, nil
}

func (s *Store) Create(ctx context.Context, profile entities.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.UserID]; exists {
		// First create wins.
		return nil
	}
	s.profiles[profile.UserID] = profile
	return nil
}

// SetRole rewrites a stored profile's role. Test and local-dev seam; the
// HTTP surface has no role mutation.
func (s *Store) SetRole(userID string, role entities.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return
	}
	profile.Role = role
	s.profiles[userID] = profile
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.ProfileRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)

// StaticTokenVerifier maps fixed bearer tokens to claims. Used by tests and
// NewInMemoryModule so local runs do not need signed JWTs.
type StaticTokenVerifier struct {
	mu     sync.RWMutex
	tokens map[string]ports.Claims
}

func NewStaticTokenVerifier() *StaticTokenVerifier {
	return &StaticTokenVerifier{
		tokens: make(map[string]ports.Claims),
	}
}

func (v *StaticTokenVerifier) Register(token string, claims ports.Claims) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tokens[token] = claims
}

func (v *StaticTokenVerifier) Verify(ctx context.Context, token string) (ports.Claims, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	claims, ok := v.tokens[token]
	if !ok {
		return ports.Claims{}, domainerrors.ErrUnauthenticated
	}
	return claims, nil
}

var _ ports.TokenVerifier = (*StaticTokenVerifier)(nil)

// PassthroughCache satisfies ProfileCache without retaining anything. Tests
// use it when cache staleness would get in the way.
type PassthroughCache struct{}

func (PassthroughCache) Get(string) (entities.Profile, bool) { return entities.Profile{}, false }
func (PassthroughCache) Set(entities.Profile)                {}

var _ ports.ProfileCache = PassthroughCache{}
