// Package memory provides an in-memory credential store, used when no
// persistent store is configured and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/core/ports/driven"
)

var _ driven.CredentialStore = (*CredentialStore)(nil)

// CredentialStore holds a single credential guarded by a mutex.
// The zero value is ready to use.
type CredentialStore struct {
	mu   sync.Mutex
	cred domain.Credential
}

// NewCredentialStore creates an empty in-memory credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Get returns a copy of the stored credential. An empty store yields
// the zero value.
func (s *CredentialStore) Get(context.Context) (domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred, nil
}

// Save replaces the stored credential.
func (s *CredentialStore) Save(_ context.Context, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	return nil
}
