package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgehost/internal/domain/build"
)

var buildInfo = build.NewInfo("", "", "")

// SetBuildInfo sets the values reported by `bridgehost version`.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	// No app needed.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(out(cmd), "bridgehost %s\ncommit:  %s\nbuilt:   %s\ngo:      %s\nrepo:    %s\n",
			buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion, build.RepoURL())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
