package auth

import (
	"log/slog"

	"alzassist/config"
	"alzassist/internal/domain/constants"
	"alzassist/internal/domain/service"
	"alzassist/internal/errors"
	"alzassist/internal/infra/auth/google"
)

// NewTokenService selects the bearer token verifier for the configured identity provider.
func NewTokenService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	identity := cfg.Identity
	if identity == nil {
		identity = &config.IdentityConfig{}
	}

	switch identity.Provider {
	case "", constants.IdentityProviderJWT:
		logger.Info("Verifying identity-provider tokens with shared secret")

		return NewJWTService(identity)
	case constants.IdentityProviderGoogle:
		logger.Info("Verifying Google ID tokens", slog.String("audience", identity.Audience))

		return google.NewIDTokenVerifier(identity)
	default:
		return nil, errors.Errorf("unknown identity provider: %s", identity.Provider)
	}
}
