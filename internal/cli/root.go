// Package cli implements the euroleague command line tool: interactive OAuth2
// login, token inspection, and quick lookups against the API.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/courtside/euroleague-go/pkg/auth"
	"github.com/courtside/euroleague-go/pkg/euroleague"
)

// env carries the shared state commands need: config, logger, and lazily
// constructed auth/API clients.
type env struct {
	cfg    Config
	logger *slog.Logger
}

func (e *env) authenticator() (*auth.Authenticator, error) {
	if e.cfg.ClientID == "" {
		return nil, fmt.Errorf("EUROLEAGUE_CLIENT_ID is not set")
	}
	storage, err := auth.NewFileStorage(e.cfg.TokenFile)
	if err != nil {
		return nil, err
	}
	return auth.NewAuthenticator(e.cfg.ClientID,
		auth.WithStorage(storage),
		auth.WithLogger(e.logger),
	), nil
}

// tokenStorage opens the token store without requiring a client ID, for
// commands that only inspect or clear local state.
func (e *env) tokenStorage() (*auth.FileStorage, error) {
	return auth.NewFileStorage(e.cfg.TokenFile)
}

func (e *env) apiClient() (*euroleague.Client, error) {
	opts := []euroleague.Option{
		euroleague.WithTimeout(e.cfg.Timeout),
		euroleague.WithMaxRetries(e.cfg.MaxRetries),
		euroleague.WithLogger(e.logger),
	}
	if e.cfg.BaseURL != "" {
		opts = append(opts, euroleague.WithBaseURL(e.cfg.BaseURL))
	}

	// Attach credentials when a client ID is configured; public endpoints
	// work without them.
	if e.cfg.ClientID != "" {
		authn, err := e.authenticator()
		if err != nil {
			return nil, err
		}
		opts = append(opts, euroleague.WithCredentials(authn))
	}

	return euroleague.NewClient(opts...)
}

// NewRootCommand builds the euroleague command tree.
func NewRootCommand() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "euroleague",
		Short:         "Euroleague Basketball API client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			e.cfg = LoadConfig()
			e.logger = newLogger(e.cfg)
		},
	}

	root.AddCommand(
		newLoginCommand(e),
		newTokenCommand(e),
		newStandingsCommand(e),
		newPlayByPlayCommand(e),
	)
	return root
}

// Execute runs the CLI and returns its exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
