// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"alzassist/config"
	"alzassist/internal/domain/service"
	"alzassist/internal/errors"
)

// identityClaims are the claims read from identity-provider access tokens.
type identityClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// jwtService verifies HMAC-signed access tokens issued by the identity provider.
type jwtService struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.IdentityConfig) (service.TokenService, error) {
	if cfg == nil || cfg.JWTSecret == "" {
		return nil, errors.New("identity provider JWT secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &jwtService{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		parser: jwt.NewParser(opts...),
	}, nil
}

// ValidateToken checks the signature and registered claims and returns the caller identity.
func (s *jwtService) ValidateToken(_ context.Context, tokenString string) (*service.Claims, error) {
	claims := &identityClaims{}
	if _, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}

	if claims.Subject == "" {
		return nil, errors.New("access token has no subject")
	}

	return &service.Claims{
		UserID:  service.UserIDFromSubject(s.issuer, claims.Subject),
		Email:   claims.Email,
		Subject: claims.Subject,
	}, nil
}
