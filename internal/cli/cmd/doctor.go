package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/cli/styles"
	"github.com/bnema/bridgehost/internal/infrastructure/deps"
	"github.com/bnema/bridgehost/internal/infrastructure/desktop"
	"github.com/bnema/bridgehost/internal/infrastructure/webkit"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check runtime requirements and desktop integration",
	Long: `Doctor checks what the host window needs to capture camera and microphone:

- native libraries (GTK4, WebKitGTK 6.0, GStreamer) via pkg-config
- the XDG desktop portal on the session bus
- the desktop entry the portal identifies bridgehost by`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	runtimeOut := usecase.NewCheckRuntimeUseCase(deps.NewPkgConfigProbe()).Execute(ctx)

	report := styles.DoctorReport{
		NativeWebKit:    webkit.IsNativeAvailable(),
		PortalAvailable: a.PortalAvailable(),
		Runtime:         make([]styles.DoctorRuntimeCheck, 0, len(runtimeOut.Checks)),
	}
	for _, c := range runtimeOut.Checks {
		report.Runtime = append(report.Runtime, styles.DoctorRuntimeCheck{
			Name:            c.DisplayName,
			Installed:       c.Installed,
			Version:         c.Version,
			RequiredVersion: c.RequiredVersion,
			OK:              c.MeetsRequirement,
			Error:           c.Error,
		})
	}

	status, err := desktop.New(a.Config.AppID).GetStatus(ctx)
	if err == nil {
		report.DesktopInstalled = status.DesktopFileInstalled
		report.DesktopPath = status.DesktopFilePath
	}

	report.OverallOK = runtimeOut.OK && report.NativeWebKit && report.PortalAvailable && report.DesktopInstalled
	if _, err := fmt.Fprintln(out(cmd), styles.NewDoctorRenderer(a.Theme).Render(report)); err != nil {
		return err
	}

	switch {
	case !runtimeOut.OK:
		return errors.New("runtime requirements not met")
	case !report.PortalAvailable:
		return errors.New("permission portal unavailable")
	}
	return nil
}
