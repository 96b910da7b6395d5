package jwtadapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "youthhub/contexts/identity-access/session-service/domain/errors"
	"youthhub/contexts/identity-access/session-service/ports"
)

// Verifier checks HS256 session tokens. Expiry and not-before are enforced
// by the jwt library during Parse.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(ctx context.Context, token string) (ports.Claims, error) {
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ports.Claims{}, domainerrors.ErrUnauthenticated
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ports.Claims{}, domainerrors.ErrUnauthenticated
	}
	subject, _ := mapClaims["sub"].(string)
	if strings.TrimSpace(subject) == "" {
		return ports.Claims{}, domainerrors.ErrUnauthenticated
	}
	email, _ := mapClaims["email"].(string)
	fullName, _ := mapClaims["full_name"].(string)

	return ports.Claims{
		UserID:   subject,
		Email:    email,
		FullName: fullName,
	}, nil
}

var _ ports.TokenVerifier = (*Verifier)(nil)
