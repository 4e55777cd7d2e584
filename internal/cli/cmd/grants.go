package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/cli/model"
	"github.com/bnema/bridgehost/internal/cli/styles"
	"github.com/bnema/bridgehost/internal/domain/entity"
)

var (
	grantsOrigin string
	grantsLimit  int
	grantsJSON   bool
	purgeOrigin  string
	purgeYes     bool
)

var grantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "Browse the log of in-page media grants",
	Long: `List the decisions taken for camera and microphone requests made by pages.
An interactive table is shown when stdout is a terminal.`,
	RunE: runGrants,
}

var grantsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete grant log entries",
	Long:  `Delete the grant log entries of one origin, or all entries when --origin is not given.`,
	RunE:  runGrantsPurge,
}

func init() {
	rootCmd.AddCommand(grantsCmd)
	grantsCmd.AddCommand(grantsPurgeCmd)

	grantsCmd.Flags().StringVar(&grantsOrigin, "origin", "", "only show grants for this origin")
	grantsCmd.Flags().IntVar(&grantsLimit, "limit", usecase.DefaultGrantListLimit, "maximum entries to show")
	grantsCmd.Flags().BoolVar(&grantsJSON, "json", false, "output as JSON")

	grantsPurgeCmd.Flags().StringVar(&purgeOrigin, "origin", "", "only purge this origin")
	grantsPurgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "required to purge every origin")
}

type grantJSON struct {
	ID         int64    `json:"id"`
	Origin     string   `json:"origin"`
	Requested  []string `json:"requested"`
	Granted    []string `json:"granted"`
	Decision   string   `json:"decision"`
	PolicyMode string   `json:"policy_mode"`
	CreatedAt  string   `json:"created_at"`
}

func toGrantJSON(r *entity.GrantRecord) grantJSON {
	return grantJSON{
		ID:         r.ID,
		Origin:     r.Origin,
		Requested:  entity.MediaResourcesToStrings(r.Requested),
		Granted:    entity.MediaResourcesToStrings(r.Granted),
		Decision:   string(r.Decision),
		PolicyMode: string(r.PolicyMode),
		CreatedAt:  r.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func runGrants(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}

	interactive := !grantsJSON && isatty.IsTerminal(os.Stdout.Fd())
	if interactive {
		m := model.NewGrantsModel(a.Ctx(), a.Theme, a.ListGrantsUC, grantsOrigin, grantsLimit)
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}

	records, err := a.ListGrantsUC.List(a.Ctx(), grantsOrigin, grantsLimit)
	if err != nil {
		return err
	}

	if grantsJSON {
		rows := make([]grantJSON, len(records))
		for i, r := range records {
			rows[i] = toGrantJSON(r)
		}
		enc := json.NewEncoder(out(cmd))
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	for _, r := range records {
		row := styles.GrantRow(r)
		if _, err := fmt.Fprintf(out(cmd), "%-10s %-36s %-28s %s\n", row[0], row[1], row[2], row[3]); err != nil {
			return err
		}
	}
	return nil
}

func runGrantsPurge(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	if purgeOrigin == "" && !purgeYes {
		return fmt.Errorf("refusing to purge every origin without --yes")
	}

	n, err := a.ListGrantsUC.Purge(a.Ctx(), purgeOrigin)
	if err != nil {
		return err
	}

	target := "all origins"
	if purgeOrigin != "" {
		target = purgeOrigin
	}
	_, err = fmt.Fprintln(out(cmd), a.Theme.SuccessStyle.Render(
		fmt.Sprintf("%s purged %d grant(s) for %s", styles.IconTrash, n, target)))
	return err
}
