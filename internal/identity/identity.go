package identity

import (
	"context"
	"errors"
	"fmt"

	identityerrors "go-payroll/internal/identity/errors"
	"go-payroll/internal/profile"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Identity is who the bearer credential belongs to.
type Identity struct {
	UserID string
	Role   string
}

//go:generate mockgen -source=identity.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	// Resolve maps a bearer token to an identity. Credential problems are
	// reported with identityerrors sentinels; anything else is an upstream failure.
	Resolve(ctx context.Context, token string) (*Identity, error)
}

type jwtResolver struct {
	secret   []byte
	profiles profile.Repository
}

// NewJWTResolver verifies HS256 tokens and reads the role from the caller's
// profile, so role changes apply without reissuing tokens.
func NewJWTResolver(secret string, profiles profile.Repository) Resolver {
	return &jwtResolver{secret: []byte(secret), profiles: profiles}
}

func (r *jwtResolver) Resolve(ctx context.Context, token string) (*Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, identityerrors.ErrTokenExpired
		}
		return nil, identityerrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, identityerrors.ErrInvalidToken
	}

	userID := subject(claims)
	if userID == "" {
		return nil, identityerrors.ErrInvalidToken
	}

	p, err := r.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identityerrors.ErrUnknownUser
		}
		return nil, err
	}

	return &Identity{UserID: p.ID.String(), Role: p.Role}, nil
}

// subject accepts both the registered "sub" claim and the legacy "user_id".
func subject(claims jwt.MapClaims) string {
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	if uid, ok := claims["user_id"].(string); ok {
		return uid
	}
	return ""
}
