package driven

import (
	"context"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// ConfigStore exposes local configuration: the site identity and the
// display-name overrides for logical lists.
type ConfigStore interface {
	// Settings returns the current connection settings.
	Settings() domain.Settings

	// ListName returns the display name for a logical list, falling
	// back to the built-in default when no override is configured.
	ListName(t domain.ListType) string

	// Watch invokes onChange whenever the backing configuration file
	// changes, until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
