package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lorenzomotta/AUSER/internal/adapters/driving/oauth"
)

// loginTimeout bounds how long the login command waits for the user to
// finish the browser flow.
const loginTimeout = 5 * time.Minute

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the SharePoint login",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in through the browser",
	Long: `Opens the Microsoft login page in your browser and waits for the
redirect on the configured local port. The resulting token is stored
and refreshed automatically on later commands.`,
	RunE: runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a usable token is stored",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil || configStore == nil {
		return errors.New("auth service not configured")
	}

	ctx := context.Background()
	settings := configStore.Settings()

	authURL, state, err := authService.BeginAuthorization(ctx, settings)
	if err != nil {
		return err
	}

	server, err := oauth.NewCallbackServer(settings.RedirectURI, state)
	if err != nil {
		return err
	}
	if err := server.Start(); err != nil {
		return err
	}
	defer server.Stop() //nolint:errcheck

	cmd.Println("Opening the login page in your browser...")
	if err := oauth.OpenBrowser(authURL); err != nil {
		cmd.Printf("Could not open the browser. Visit this URL manually:\n\n%s\n\n", authURL)
	}

	code, err := server.WaitForCode(ctx, loginTimeout)
	if err != nil {
		return fmt.Errorf("waiting for authorization: %w", err)
	}

	cred, err := authService.CompleteAuthorization(ctx, settings, code)
	if err != nil {
		return err
	}

	cmd.Printf("Signed in. Token valid until %s.\n",
		cred.ExpiresAt.Local().Format("02/01/2006 15:04"))
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	if authService.IsAuthenticated(context.Background()) {
		cmd.Println("Authenticated.")
	} else {
		cmd.Println("Not authenticated. Run 'auser auth login'.")
	}
	return nil
}
