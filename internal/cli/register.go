package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account in the shared store",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			var err error
			if email == "" {
				email, err = GetSimpleText(reader, "Enter email", out)
				if err != nil {
					return err
				}
			}

			password, err := GetPassword(out)
			if err != nil {
				return err
			}

			if err := app.Service().CreateAccount(cmd.Context(), email, password); err != nil {
				return err
			}

			// EnsureAccount is a silent no-op for an already-claimed email,
			// so this line is accurate either way.
			fmt.Fprintf(out, "Account %s is registered.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email of the account to register")
	return cmd
}
