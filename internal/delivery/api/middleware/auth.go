package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "alzassist/internal/delivery/context"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/domain/service"
	"alzassist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates identity-provider bearer tokens and authorizes by profile role.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, profileUC usecase.ProfileUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, profileUC: profileUC, logger: logger}
}

// Authenticate validates the bearer token and stores the caller's claims.
// It does not require a profile, so it also guards onboarding.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrUnauthorized
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(c.Request().Context(), tokenString)
		if err != nil {
			deliverycontext.LoggerFromContext(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetClaims(c, claims)
		deliverycontext.EnrichLogger(c, m.logger, slog.String("user_id", claims.UserID.String()))

		return next(c)
	}
}

// RequireProfile loads the caller's profile. It must be used after Authenticate.
func (m *AuthMiddleware) RequireProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		profile, err := m.profileUC.GetProfile(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrProfileNotFound) {
				return domainerrors.ErrProfileRequired
			}

			return err
		}

		deliverycontext.SetProfile(c, profile)

		return next(c)
	}
}

// RequireRole rejects callers whose profile has another role. It must be used after RequireProfile.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	denied := domainerrors.NewBaseError(
		http.StatusForbidden,
		domainerrors.ErrRoleRequired.ErrorCode(),
		fmt.Sprintf("Access denied. Required role: %s", role),
		"",
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, ok := deliverycontext.GetProfile(c)
			if !ok {
				return domainerrors.ErrProfileRequired
			}
			if profile.Role != role {
				return denied
			}

			return next(c)
		}
	}
}
