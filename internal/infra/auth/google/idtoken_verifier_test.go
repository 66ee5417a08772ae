package google

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"alzassist/config"
	"alzassist/internal/domain/service"
	"alzassist/internal/errors"
)

func TestNewIDTokenVerifier_RequiresAudience(t *testing.T) {
	_, err := NewIDTokenVerifier(&config.IdentityConfig{})
	assert.Error(t, err)

	_, err = NewIDTokenVerifier(nil)
	assert.Error(t, err)
}

func TestIDTokenVerifier_ValidateToken(t *testing.T) {
	verifier := &idTokenVerifier{
		audience: "client-id",
		validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			if token != "good" {
				return nil, errors.New("idtoken: invalid token")
			}
			assert.Equal(t, "client-id", audience)

			return &idtoken.Payload{
				Subject: "10769150350006150715113082367",
				Claims:  map[string]any{"email": "carer@example.com"},
			}, nil
		},
	}

	claims, err := verifier.ValidateToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "carer@example.com", claims.Email)
	assert.Equal(t, service.UserIDFromSubject(issuer, "10769150350006150715113082367"), claims.UserID)

	again, err := verifier.ValidateToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, again.UserID)

	_, err = verifier.ValidateToken(context.Background(), "bad")
	assert.ErrorContains(t, err, "invalid Google ID token")
}
