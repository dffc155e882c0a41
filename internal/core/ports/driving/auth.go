package driving

import (
	"context"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// Auth is the driving port for the OAuth2 login flow.
type Auth interface {
	// IsAuthenticated reports whether a usable access token is stored.
	IsAuthenticated(ctx context.Context) bool

	// BeginAuthorization seeds the credential identity, generates a
	// CSRF state value and returns the authorization URL the user must
	// visit, together with the state for callback verification.
	BeginAuthorization(ctx context.Context, s domain.Settings) (authURL, state string, err error)

	// CompleteAuthorization redeems the authorization code delivered to
	// the redirect URI and returns the stored credential.
	CompleteAuthorization(ctx context.Context, s domain.Settings, code string) (domain.Credential, error)
}
