package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCommand(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Long: `Exchange email and password for a backend session token. When
--password is omitted the password is read from the first line of stdin.

Examples:
  skateplan login --email coach@example.com
  echo "$PW" | skateplan login --email coach@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			deps, err := a.services()
			if err != nil {
				return err
			}
			sess, err := deps.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if sess.User == nil {
				a.printf("Logged in\n")
				return nil
			}
			a.printf("Logged in as %s (%s)\n", sess.User.Email, sess.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.services()
			if err != nil {
				return err
			}
			if err := deps.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			a.printf("Logged out\n")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(sess.User)
		},
	}
}
