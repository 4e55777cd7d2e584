package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgehost/internal/bootstrap"
)

var runNoWatch bool

var runCmd = &cobra.Command{
	Use:   "run [url]",
	Short: "Open the host window",
	Long: `Open the host window and load the URL, or start_url from the config.

On startup camera and microphone are checked with the desktop portal and
requested together when either is missing. Media requests from the page are
answered by the configured policy (grant_all by default).

Examples:
  bridgehost run
  bridgehost run https://meet.example.com/room`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHost,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoWatch, "no-watch", false, "do not reload the grant policy when the config file changes")
}

func runHost(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := bootstrap.RunOptions{
		Config:      a.Manager,
		WatchConfig: !runNoWatch,
	}
	if len(args) == 1 {
		opts.StartURL = args[0]
	}
	return bootstrap.RunHost(ctx, opts)
}
