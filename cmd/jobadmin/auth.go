package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobadmin/internal/rbac"
)

func loginCmd(c *cli) *cobra.Command {
	var identifier, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session",
		Long: `Signs in against the job-portal API and saves the session file.

The password is read from stdin when --password is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			sess, err := c.svc.Auth.Login(cmd.Context(), strings.TrimSpace(identifier), password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Signed in as %s (%s)\n", okStyle.Render("✓"), sess.User.Name, rbac.RoleLabel(sess.Role))
			return nil
		},
	}
	cmd.Flags().StringVarP(&identifier, "identifier", "u", "", "email or mobile number")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	return cmd
}

func logoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sess, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.svc.Auth.Logout(ctx, sess); err != nil {
				// The local session is already gone.
				c.log.Warn("backend_logout_failed", zap.Error(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(sess.User.Name))
			fmt.Fprintf(out, "email:  %s\n", sess.User.Email)
			fmt.Fprintf(out, "role:   %s\n", rbac.RoleLabel(sess.Role))
			fmt.Fprintf(out, "since:  %s\n", sess.CreatedAt.Local().Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func menuCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the console pages available to the signed-in admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			for _, item := range rbac.Menu(sess.Role) {
				line := fmt.Sprintf("%-20s %s", item.Text, item.Path)
				if !rbac.CanAccess(sess.Role, item.Path) {
					line += mutedStyle.Render("  (no access)")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
