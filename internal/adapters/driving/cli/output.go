package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/logger"
)

// fetchWithSnapshot runs fetch and persists the result for the given
// list on success. When the remote call fails upstream and a snapshot
// exists, the stale records are returned with a warning instead of the
// error.
func fetchWithSnapshot[T any](
	ctx context.Context,
	cmd *cobra.Command,
	t domain.ListType,
	fetch func(context.Context) ([]T, error),
) ([]T, error) {
	records, err := fetch(ctx)
	if err == nil {
		saveSnapshot(ctx, t, records)
		return records, nil
	}

	if snapshotStore == nil || !domain.IsKind(err, domain.KindUpstream) {
		return nil, err
	}

	payload, takenAt, snapErr := snapshotStore.Snapshot(ctx, t)
	if snapErr != nil {
		return nil, err
	}
	var cached []T
	if err := json.Unmarshal(payload, &cached); err != nil {
		logger.Warn("corrupt snapshot for %s: %v", t, err)
		return nil, err
	}

	cmd.PrintErrf("Warning: remote unreachable, showing data saved %s\n",
		takenAt.Local().Format("02/01/2006 15:04"))
	return cached, nil
}

func saveSnapshot[T any](ctx context.Context, t domain.ListType, records []T) {
	if snapshotStore == nil {
		return
	}
	payload, err := json.Marshal(records)
	if err != nil {
		logger.Warn("encoding snapshot for %s: %v", t, err)
		return
	}
	if err := snapshotStore.SaveSnapshot(ctx, t, payload); err != nil {
		logger.Warn("saving snapshot for %s: %v", t, err)
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
