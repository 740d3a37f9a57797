package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vpetrenko/mailstore/internal/config"
	"github.com/vpetrenko/mailstore/internal/tui"
)

// Execute loads the configuration, builds the command tree, and runs it.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	app := NewApp(cfg)

	root := newRootCmd(app)
	root.AddCommand(newRegisterCmd(app))
	root.AddCommand(newSendCmd(app))
	root.AddCommand(newInboxCmd(app))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mailstore",
		Short: "A local, file-backed mailbox for accounts on this machine",
		Long: "mailstore keeps a shared message ledger in one JSON file.\n" +
			"Running it without a subcommand opens the full-screen mailbox UI;\n" +
			"register, send, and inbox cover the same operations for scripts.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), app.Service())
		},
	}
}
