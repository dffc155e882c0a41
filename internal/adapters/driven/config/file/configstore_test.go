package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600)
	require.NoError(t, err)
}

const sampleConfig = `
[sharepoint]
site_url = "https://contoso.sharepoint.com/sites/ops"
tenant_id = "tenant-1"
client_id = "client-1"

[lists]
members = "SOCI_CUSTOM"
`

func TestSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sampleConfig)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	settings := store.Settings()
	assert.Equal(t, "https://contoso.sharepoint.com/sites/ops", settings.SiteURL)
	assert.Equal(t, "tenant-1", settings.TenantID)
	assert.Equal(t, "client-1", settings.ClientID)
	assert.Empty(t, settings.ClientSecret)
	assert.Equal(t, DefaultRedirectURI, settings.RedirectURI)
}

func TestSettingsEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sampleConfig)
	t.Setenv("SHAREPOINT_CLIENT_SECRET", "from-env")
	t.Setenv("SHAREPOINT_TENANT_ID", "tenant-env")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	settings := store.Settings()
	assert.Equal(t, "from-env", settings.ClientSecret)
	assert.Equal(t, "tenant-env", settings.TenantID)
	assert.Equal(t, "client-1", settings.ClientID)
}

func TestMissingFileIsEmptyConfig(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	settings := store.Settings()
	assert.Empty(t, settings.SiteURL)
	assert.Equal(t, DefaultRedirectURI, settings.RedirectURI)
}

func TestListNameOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sampleConfig)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "SOCI_CUSTOM", store.ListName(domain.ListMembers))
	assert.Equal(t, domain.ListCardsTodo.DefaultListName(), store.ListName(domain.ListCardsTodo))
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sampleConfig)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	require.NoError(t, store.Watch(ctx, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	writeConfig(t, dir, `
[sharepoint]
site_url = "https://other.sharepoint.com/sites/new"
`)

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("config change not observed")
	}
	assert.Equal(t, "https://other.sharepoint.com/sites/new", store.Settings().SiteURL)
}
