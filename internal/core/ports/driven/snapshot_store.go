package driven

import (
	"context"
	"time"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// SnapshotStore persists the last successfully mapped record set per
// logical list, plus the credential, across runs. Snapshots let the CLI
// serve stale data when the remote API is unreachable.
type SnapshotStore interface {
	// SaveSnapshot stores the JSON-encoded record set for a list.
	SaveSnapshot(ctx context.Context, t domain.ListType, payload []byte) error

	// Snapshot returns the stored payload and the time it was taken.
	// A missing snapshot is a not_found error.
	Snapshot(ctx context.Context, t domain.ListType) ([]byte, time.Time, error)

	// SaveCredential persists the credential.
	SaveCredential(ctx context.Context, cred domain.Credential) error

	// Credential returns the persisted credential, or the zero value
	// when none was saved.
	Credential(ctx context.Context) (domain.Credential, error)

	// Close releases the underlying database.
	Close() error
}
