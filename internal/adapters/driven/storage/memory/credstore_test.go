package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

func TestEmptyStoreReturnsZeroValue(t *testing.T) {
	store := NewCredentialStore()

	cred, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, cred.IsAuthenticated())
}

func TestSaveThenGet(t *testing.T) {
	store := NewCredentialStore()
	want := domain.Credential{
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConcurrentAccess(t *testing.T) {
	store := NewCredentialStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Save(context.Background(), domain.Credential{AccessToken: "at"})
		}()
		go func() {
			defer wg.Done()
			store.Get(context.Background())
		}()
	}
	wg.Wait()

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "at", got.AccessToken)
}
