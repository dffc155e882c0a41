package driven

import (
	"context"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// ListSource retrieves and mutates rows of named remote lists.
// Implementations own pagination, filter translation and token
// freshness; callers see complete item sets or a classified error.
type ListSource interface {
	// FetchItems returns every item of the named list. filter, when
	// non-empty, is a server-side filter in the legacy REST syntax; the
	// source translates it for the remote API. A rejected filter is
	// reported as a filter-kind error so the caller can retry
	// unfiltered.
	FetchItems(ctx context.Context, listName, filter string) ([]domain.RawItem, error)

	// UpdateItem merges the given logical field values into one item.
	// Unknown logical field names are ignored.
	UpdateItem(ctx context.Context, listName string, itemID int, fields map[string]string) error
}

// AuthGateway performs the OAuth2 token operations against the
// identity provider.
type AuthGateway interface {
	// AuthorizationURL builds the user-facing authorization URL for
	// the authorization-code flow.
	AuthorizationURL(tenantID, clientID, redirectURI, state string) (string, error)

	// ExchangeCode redeems an authorization code, persists the
	// resulting credential and returns it.
	ExchangeCode(ctx context.Context, code, redirectURI string) (domain.Credential, error)

	// EnsureValid returns a credential with a usable access token,
	// refreshing it first when expired.
	EnsureValid(ctx context.Context) (domain.Credential, error)
}
