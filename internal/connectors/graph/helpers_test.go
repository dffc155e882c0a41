package graph

import (
	"context"
	"sync"
	"time"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// memStore is a minimal in-process credential store for connector tests.
type memStore struct {
	mu   sync.Mutex
	cred domain.Credential
}

func (s *memStore) Get(_ context.Context) (domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred, nil
}

func (s *memStore) Save(_ context.Context, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	return nil
}

// validCredential returns an authenticated credential pointing at the
// given site URL.
func validCredential(siteURL string) domain.Credential {
	return domain.Credential{
		SiteURL:      siteURL,
		TenantID:     "tenant-1",
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		AccessToken:  "token-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

// newTestClient builds a client aimed at a local test server, with the
// throttle opened up so pagination tests run fast.
func newTestClient(store *memStore, baseURL string) *Client {
	return NewClient(store,
		WithGraphBase(baseURL),
		WithLoginBase(baseURL),
		WithRequestRate(10000, 10000),
	)
}
