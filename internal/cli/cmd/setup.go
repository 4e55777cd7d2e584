package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/cli/styles"
	"github.com/bnema/bridgehost/internal/infrastructure/desktop"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Setup desktop integration",
	Long: `Setup bridgehost's integration with the desktop environment.

The permission portal identifies unsandboxed applications through a desktop
entry named after the application id. Without it camera and microphone
grants may not be remembered for bridgehost.`,
}

var setupInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the desktop entry",
	Long: `Install <app_id>.desktop to $XDG_DATA_HOME/applications
(typically ~/.local/share/applications). Safe to run multiple times.`,
	RunE: runSetupInstall,
}

var setupRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the desktop entry",
	RunE:  runSetupRemove,
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.AddCommand(setupInstallCmd, setupRemoveCmd)
}

func runSetupInstall(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	theme := a.Theme

	uc := usecase.NewInstallDesktopUseCase(desktop.New(a.Config.AppID))
	result, err := uc.Execute(a.Ctx())
	if err != nil {
		fmt.Fprintf(out(cmd), "%s %s\n", theme.ErrorStyle.Render(styles.IconX), err.Error())
		return err
	}

	verb := "installed to"
	if result.WasDesktopExisting {
		verb = "updated at"
	}
	_, err = fmt.Fprintf(out(cmd), "%s Desktop entry %s %s\n",
		theme.SuccessStyle.Render(styles.IconCheck), verb, theme.Highlight.Render(result.DesktopPath))
	return err
}

func runSetupRemove(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	theme := a.Theme

	uc := usecase.NewRemoveDesktopUseCase(desktop.New(a.Config.AppID))
	result, err := uc.Execute(a.Ctx())
	if err != nil {
		return err
	}

	if !result.WasDesktopInstalled {
		_, err = fmt.Fprintln(out(cmd), theme.Subtle.Render("Desktop entry was not installed"))
		return err
	}
	_, err = fmt.Fprintf(out(cmd), "%s Removed %s\n",
		theme.SuccessStyle.Render(styles.IconCheck), theme.Highlight.Render(result.RemovedDesktopPath))
	return err
}
