package driven

import (
	"context"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// CredentialStore holds the single credential for the configured site.
// Implementations must make Get and Save safe for concurrent use; a
// reader never observes a half-written refresh because the credential
// is replaced as a whole.
type CredentialStore interface {
	// Get returns the stored credential. A store with no credential
	// returns the zero value, not an error.
	Get(ctx context.Context) (domain.Credential, error)

	// Save replaces the stored credential.
	Save(ctx context.Context, cred domain.Credential) error
}
