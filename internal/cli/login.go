package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/courtside/euroleague-go/pkg/auth"
)

func newLoginCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate via the browser-based OAuth2 flow",
		Long: `Starts the PKCE authorization flow: prints a URL to open in a browser,
then reads the redirect URL you were sent back to and exchanges the
authorization code for a token. The token is stored locally for later
commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			authn, err := e.authenticator()
			if err != nil {
				return err
			}

			authURL, state, verifier, err := authn.AuthorizationURL("")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Open this URL in your browser and authorize the application:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "  "+authURL)
			fmt.Fprintln(out)
			fmt.Fprint(out, "Paste the full redirect URL here: ")

			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read redirect URL: %w", err)
			}

			code, gotState, err := auth.ParseCallback(strings.TrimSpace(line))
			if err != nil {
				return err
			}
			if gotState != state {
				return fmt.Errorf("state mismatch: possible CSRF, aborting")
			}

			token, err := authn.ExchangeCode(cmd.Context(), code, verifier)
			if err != nil {
				return err
			}

			e.logger.Info("login complete", "scope", token.Scope)
			fmt.Fprintf(out, "Logged in. Token valid until %s.\n", token.ExpiresAt().Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}
