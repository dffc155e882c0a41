// Package sqlite persists list snapshots and the credential in a local
// SQLite database, so the CLI can serve the last known data when the
// remote API is unreachable and survive restarts without a new login.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lorenzomotta/AUSER/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/core/ports/driven"
)

var _ driven.SnapshotStore = (*Store)(nil)

// Store is a SQLite-backed snapshot and credential store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.auser/data/auser.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".auser", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "auser.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveSnapshot stores or replaces the payload for a logical list.
func (s *Store) SaveSnapshot(ctx context.Context, t domain.ListType, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (list_type, payload, taken_at)
		VALUES (?, ?, ?)
		ON CONFLICT(list_type) DO UPDATE SET
			payload = excluded.payload,
			taken_at = excluded.taken_at
	`, string(t), payload, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Snapshot returns the stored payload for a logical list and when it
// was taken.
func (s *Store) Snapshot(ctx context.Context, t domain.ListType) ([]byte, time.Time, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT payload, taken_at FROM snapshots WHERE list_type = ?
	`, string(t))

	var payload []byte
	var takenAt time.Time
	if err := row.Scan(&payload, &takenAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, time.Time{}, domain.E(domain.KindNotFound, "sqlite: snapshot",
				fmt.Sprintf("no snapshot for %s", t))
		}
		return nil, time.Time{}, fmt.Errorf("scanning snapshot: %w", err)
	}
	return payload, takenAt, nil
}

// SaveCredential persists the credential as a single JSON row.
func (s *Store) SaveCredential(ctx context.Context, cred domain.Credential) error {
	payload, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshalling credential: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credentials (id, payload, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, string(payload), time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	return nil
}

// Credential returns the persisted credential, or the zero value when
// none was saved.
func (s *Store) Credential(ctx context.Context) (domain.Credential, error) {
	row := s.db.QueryRowContext(ctx, "SELECT payload FROM credentials WHERE id = 1")

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return domain.Credential{}, nil
		}
		return domain.Credential{}, fmt.Errorf("scanning credential: %w", err)
	}

	var cred domain.Credential
	if err := json.Unmarshal([]byte(payload), &cred); err != nil {
		return domain.Credential{}, fmt.Errorf("unmarshalling credential: %w", err)
	}
	return cred, nil
}

// CredentialStore returns a driven.CredentialStore view backed by this
// store, so the connector reads and writes tokens through the database.
func (s *Store) CredentialStore() driven.CredentialStore {
	return &credentialStore{store: s}
}

// credentialStore adapts Store to the CredentialStore port.
type credentialStore struct {
	store *Store
}

var _ driven.CredentialStore = (*credentialStore)(nil)

func (c *credentialStore) Get(ctx context.Context) (domain.Credential, error) {
	return c.store.Credential(ctx)
}

func (c *credentialStore) Save(ctx context.Context, cred domain.Credential) error {
	return c.store.SaveCredential(ctx, cred)
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
