package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/cli/styles"
	"github.com/bnema/bridgehost/internal/domain/entity"
)

var permissionsJSON bool

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Inspect and request OS camera/microphone permissions",
}

var permissionsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show OS status for camera and microphone",
	Long: `Query the desktop portal permission store for camera and microphone.
The last recorded answer to a permission request is shown as well.`,
	RunE: runPermissionsStatus,
}

var permissionsRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request camera and microphone if either is missing",
	Long: `Run the same check as the host does on startup. When camera or microphone
is not granted both are requested in one portal dialog and the command waits
for the answer, bounded by permissions.request_timeout_seconds.`,
	RunE: runPermissionsRequest,
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
	permissionsCmd.AddCommand(permissionsStatusCmd, permissionsRequestCmd)
	permissionsStatusCmd.Flags().BoolVar(&permissionsJSON, "json", false, "output as JSON")
}

type statusJSON struct {
	Capability string `json:"capability"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

func runPermissionsStatus(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	statuses := usecase.NewEnsureOSPermissionsUseCase(a.Gateway()).Check(ctx)

	if permissionsJSON {
		rows := make([]statusJSON, len(statuses))
		for i, s := range statuses {
			rows[i] = statusJSON{Capability: string(s.Capability), Status: string(s.Status)}
			if s.Err != nil {
				rows[i].Error = s.Err.Error()
			}
		}
		enc := json.NewEncoder(out(cmd))
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	last, err := a.OSResults.Latest(ctx)
	if err != nil {
		last = nil
	}

	lines := make([]styles.CapabilityLine, len(statuses))
	for i, s := range statuses {
		lines[i] = styles.CapabilityLine{Capability: s.Capability, Status: s.Status, Err: s.Err}
	}
	_, err = fmt.Fprintln(out(cmd), styles.NewPermissionStatusRenderer(a.Theme).Render(lines, last))
	return err
}

func runPermissionsRequest(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	renderer := styles.NewPermissionStatusRenderer(a.Theme)

	uc := usecase.NewEnsureOSPermissionsUseCase(a.Gateway())
	res, result, err := uc.ExecuteAndWait(ctx, a.RequestTimeout())
	if errors.Is(err, usecase.ErrPermissionRequestTimeout) {
		return fmt.Errorf("no answer from the permission dialog after %s", a.RequestTimeout())
	}
	if err != nil {
		return err
	}

	if !res.Requested {
		_, err = fmt.Fprintln(out(cmd), a.Theme.SuccessStyle.Render(styles.IconCheck+" camera and microphone already granted"))
		return err
	}

	a.RecordResultUC.Execute(ctx, *result)
	if _, err := fmt.Fprintln(out(cmd), renderer.RenderRequestOutcome(*result)); err != nil {
		return err
	}
	if !result.AllGranted() {
		return fmt.Errorf("os denied %d of %d media permissions", len(result.Denied()), len(entity.MediaCapabilities()))
	}
	return nil
}
