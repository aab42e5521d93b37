package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenCommand(e *env) *cobra.Command {
	var clear bool
	var refresh bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect, refresh, or clear the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if clear {
				storage, err := e.tokenStorage()
				if err != nil {
					return err
				}
				if err := storage.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(out, "Token cleared.")
				return nil
			}

			if refresh {
				authn, err := e.authenticator()
				if err != nil {
					return err
				}
				token, err := authn.Refresh(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Token refreshed. Valid until %s.\n",
					token.ExpiresAt().Format("2006-01-02 15:04:05 MST"))
				return nil
			}

			storage, err := e.tokenStorage()
			if err != nil {
				return err
			}
			token, err := storage.Load()
			if err != nil {
				return err
			}
			if token == nil {
				fmt.Fprintln(out, "No token stored. Run 'euroleague login' first.")
				return nil
			}

			status := "valid"
			if token.IsExpired() {
				status = "expired"
			}
			fmt.Fprintf(out, "Status:   %s\n", status)
			fmt.Fprintf(out, "Type:     %s\n", token.TokenType)
			fmt.Fprintf(out, "Scope:    %s\n", token.Scope)
			fmt.Fprintf(out, "Expires:  %s\n", token.ExpiresAt().Format("2006-01-02 15:04:05 MST"))
			fmt.Fprintf(out, "Refresh:  %t\n", token.RefreshToken != "")
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "remove the stored token")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refresh the stored token now")
	return cmd
}
