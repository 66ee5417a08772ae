package context

import (
	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyClaims  = "identity_claims"
	keyProfile = "identity_profile"
)

// SetClaims stores the verified token claims of the caller.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(keyClaims, claims)
}

// GetClaims returns the verified token claims of the caller.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok && claims != nil
}

// GetUserID returns the caller's profile ID derived from the token subject.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// SetProfile stores the caller's loaded profile.
func SetProfile(c echo.Context, profile *entity.Profile) {
	c.Set(keyProfile, profile)
}

// GetProfile returns the caller's profile. It is only present behind the profile middleware.
func GetProfile(c echo.Context) (*entity.Profile, bool) {
	profile, ok := c.Get(keyProfile).(*entity.Profile)

	return profile, ok && profile != nil
}
