package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newInboxCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Log in and print the account's messages",
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

			msgs := session.Messages()
			if len(msgs) == 0 {
				fmt.Fprintln(out, "No messages.")
				return nil
			}

			for i, m := range msgs {
				fmt.Fprintf(out, "--- %d ---\n", i+1)
				fmt.Fprintf(out, "From:    %s\n", m.Sender)
				fmt.Fprintf(out, "Date:    %s\n", m.Date.Format("2006-01-02 15:04"))
				fmt.Fprintf(out, "Subject: %s\n", m.Header)
				fmt.Fprintln(out, m.Body)
			}
			fmt.Fprintf(out, "%d message(s).\n", len(msgs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	return cmd
}
