// Package file is the TOML-backed configuration store.
package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/core/ports/driven"
	"github.com/lorenzomotta/AUSER/internal/logger"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultRedirectURI is where the provider sends the user back after
// authorization; the registered app only accepts this address.
const DefaultRedirectURI = "http://localhost:1420"

// fileConfig mirrors the TOML schema:
//
//	[sharepoint]
//	site_url = "https://contoso.sharepoint.com/sites/ops"
//	tenant_id = "..."
//	client_id = "..."
//
//	[lists]
//	members = "LOREAPP_TESSERATI"
type fileConfig struct {
	SharePoint struct {
		SiteURL      string `toml:"site_url"`
		TenantID     string `toml:"tenant_id"`
		ClientID     string `toml:"client_id"`
		ClientSecret string `toml:"client_secret"`
		RedirectURI  string `toml:"redirect_uri"`
	} `toml:"sharepoint"`
	Lists map[string]string `toml:"lists"`
}

// ConfigStore reads connection settings and list-name overrides from a
// TOML file. Secrets may instead come from the environment, which wins
// over the file.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	cfg      fileConfig
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.auser/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".auser")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the configuration file. A missing file is fine: settings
// then come from the environment or stay empty.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.cfg = fileConfig{}
			return nil
		}
		return err
	}

	var loaded fileConfig
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	s.cfg = loaded
	return nil
}

// Settings returns the current connection settings. Environment
// variables override the file so secrets can stay out of it.
func (s *ConfigStore) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sp := s.cfg.SharePoint
	settings := domain.Settings{
		SiteURL:      envOr("SHAREPOINT_SITE_URL", sp.SiteURL),
		TenantID:     envOr("SHAREPOINT_TENANT_ID", sp.TenantID),
		ClientID:     envOr("SHAREPOINT_CLIENT_ID", sp.ClientID),
		ClientSecret: envOr("SHAREPOINT_CLIENT_SECRET", sp.ClientSecret),
		RedirectURI:  envOr("SHAREPOINT_REDIRECT_URI", sp.RedirectURI),
	}
	if settings.RedirectURI == "" {
		settings.RedirectURI = DefaultRedirectURI
	}
	return settings
}

// ListName returns the display name for a logical list, falling back
// to the built-in default when no override is configured.
func (s *ConfigStore) ListName(t domain.ListType) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if name := s.cfg.Lists[string(t)]; name != "" {
		return name
	}
	return t.DefaultListName()
}

// Watch reloads the store and invokes onChange whenever the file
// changes, until ctx is cancelled. The parent directory is watched
// because editors replace files on save.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.filePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("config reload failed: %v", err)
					continue
				}
				logger.Info("configuration reloaded")
				if onChange != nil {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher: %v", err)
			}
		}
	}()
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
