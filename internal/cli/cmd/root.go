// Package cmd provides Cobra CLI commands for bridgehost.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgehost/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "bridgehost",
		Short: "Web host that bridges camera and microphone permissions",
		Long: `bridgehost opens a WebKitGTK window on a configured page and grants the
page's camera and microphone requests, after making sure the desktop portal
has granted them to the application.

Use 'bridgehost run' to open the window, or the subcommands to inspect OS
permission state and the log of in-page grants.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
