// Package cli implements the auser command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lorenzomotta/AUSER/internal/adapters/driven/config/file"
	"github.com/lorenzomotta/AUSER/internal/adapters/driven/storage/sqlite"
	"github.com/lorenzomotta/AUSER/internal/connectors/graph"
	"github.com/lorenzomotta/AUSER/internal/core/ports/driven"
	"github.com/lorenzomotta/AUSER/internal/core/ports/driving"
	"github.com/lorenzomotta/AUSER/internal/core/services"
	"github.com/lorenzomotta/AUSER/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Execute wires the real ones; tests
// substitute fakes.
var (
	recordService driving.Records
	authService   driving.Auth
	configStore   driven.ConfigStore
	snapshotStore driven.SnapshotStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "auser",
	Short: "Console for the AUSER transport-service SharePoint lists",
	Long: `auser reads and updates the association's SharePoint lists:
transport services, membership cards to produce, and the member registry.

Authenticate once with 'auser auth login'; the token is refreshed
automatically afterwards.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the real adapters and runs the root command.
func Execute() {
	// Local .env is optional; real deployments use the config file.
	_ = godotenv.Load()

	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	cfg, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	creds := store.CredentialStore()
	client := graph.NewClient(creds)

	configStore = cfg
	snapshotStore = store
	recordService = services.NewRecordService(client, cfg)
	authService = services.NewAuthService(creds, client)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
