// Package google verifies Google-issued ID tokens for deployments that use Google as identity provider.
package google

import (
	"context"

	"google.golang.org/api/idtoken"

	"alzassist/config"
	"alzassist/internal/domain/service"
	"alzassist/internal/errors"
)

const issuer = "https://accounts.google.com"

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// idTokenVerifier implements service.TokenService for Google ID tokens.
type idTokenVerifier struct {
	audience string
	validate validateFunc
}

// NewIDTokenVerifier creates a verifier bound to the OAuth client ID configured as audience.
func NewIDTokenVerifier(cfg *config.IdentityConfig) (service.TokenService, error) {
	if cfg == nil || cfg.Audience == "" {
		return nil, errors.New("google identity provider requires an audience (OAuth client ID)")
	}

	return &idTokenVerifier{
		audience: cfg.Audience,
		validate: idtoken.Validate,
	}, nil
}

// ValidateToken verifies the token signature against Google's public keys and checks audience and expiry.
func (v *idTokenVerifier) ValidateToken(ctx context.Context, tokenString string) (*service.Claims, error) {
	payload, err := v.validate(ctx, tokenString, v.audience)
	if err != nil {
		return nil, errors.Wrap(err, "invalid Google ID token")
	}

	if payload.Subject == "" {
		return nil, errors.New("google ID token has no subject")
	}

	email, _ := payload.Claims["email"].(string)

	return &service.Claims{
		UserID:  service.UserIDFromSubject(issuer, payload.Subject),
		Email:   email,
		Subject: payload.Subject,
	}, nil
}
