// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate concerns that don't naturally fit within a single entity.
package service

import (
	"context"

	"github.com/google/uuid"
)

// Claims is the verified identity extracted from a bearer token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	// Subject is the raw subject claim issued by the identity provider.
	Subject string
}

// TokenService verifies bearer tokens issued by the external identity provider.
// The service never issues tokens itself.
type TokenService interface {
	// ValidateToken checks the signature, expiry and audience of a token and returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// UserIDFromSubject maps an identity-provider subject to a profile ID. UUID
// subjects are used as-is; other subjects get a stable name-based UUID scoped by issuer.
func UserIDFromSubject(issuer, subject string) uuid.UUID {
	if id, err := uuid.Parse(subject); err == nil {
		return id
	}

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(issuer+"#"+subject))
}
