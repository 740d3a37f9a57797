package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newSendCmd(app *App) *cobra.Command {
	var (
		email    string
		receiver string
		header   string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Log in and send a message to another account",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			var err error
			if email == "" {
				email, err = GetSimpleText(reader, "Enter your email", out)
				if err != nil {
					return err
				}
			}

			password, err := GetPassword(out)
			if err != nil {
				return err
			}

			session, err := app.Service().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if receiver == "" {
				receiver, err = GetSimpleText(reader, "Enter receiver email", out)
				if err != nil {
					return err
				}
			}
			if header == "" {
				header, err = GetSimpleText(reader, "Enter subject", out)
				if err != nil {
					return err
				}
			}

			body, err := GetMultiline(reader, "Enter message body", out)
			if err != nil {
				return err
			}

			if err := session.Compose(cmd.Context(), receiver, header, body); err != nil {
				return err
			}

			fmt.Fprintf(out, "Message sent to %s.\n", receiver)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "sender email")
	cmd.Flags().StringVarP(&receiver, "to", "t", "", "receiver email")
	cmd.Flags().StringVarP(&header, "subject", "s", "", "message subject")
	return cmd
}
