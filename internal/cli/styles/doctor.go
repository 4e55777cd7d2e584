package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorRenderer renders the output of `bridgehost doctor`.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a renderer.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// DoctorReport collects every diagnostic.
type DoctorReport struct {
	OverallOK bool

	NativeWebKit bool
	Runtime      []DoctorRuntimeCheck

	PortalAvailable  bool
	DesktopInstalled bool
	DesktopPath      string
}

// DoctorRuntimeCheck is one native library check.
type DoctorRuntimeCheck struct {
	Name            string
	Installed       bool
	Version         string
	RequiredVersion string
	OK              bool
	Error           string
}

// Render renders the report.
func (r *DoctorRenderer) Render(report DoctorReport) string {
	sections := []string{
		r.renderHeader(report.OverallOK),
		r.renderRuntime(report),
		r.renderIntegration(report),
	}
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderRuntime(report DoctorReport) string {
	lines := []string{r.theme.Subtitle.Render(IconPackage + " Runtime")}
	if !report.NativeWebKit {
		lines = append(lines, r.line(IconWarning, r.theme.WarningStyle, "Build", "headless (rebuild with -tags webkit_cgo)"))
	}
	for _, c := range report.Runtime {
		lines = append(lines, r.renderRuntimeCheck(c))
	}
	return strings.Join(lines, "\n")
}

func (r *DoctorRenderer) renderRuntimeCheck(c DoctorRuntimeCheck) string {
	switch {
	case !c.Installed:
		return r.line(IconX, r.theme.ErrorStyle, c.Name, c.Error)
	case !c.OK:
		return r.line(IconWarning, r.theme.WarningStyle, c.Name, fmt.Sprintf("have %s, need >= %s", c.Version, c.RequiredVersion))
	default:
		return r.line(IconCheck, r.theme.SuccessStyle, c.Name, fmt.Sprintf("%s (>= %s)", c.Version, c.RequiredVersion))
	}
}

func (r *DoctorRenderer) renderIntegration(report DoctorReport) string {
	lines := []string{r.theme.Subtitle.Render(IconShield + " Desktop integration")}

	if report.PortalAvailable {
		lines = append(lines, r.line(IconCheck, r.theme.SuccessStyle, "Portal", "session bus reachable"))
	} else {
		lines = append(lines, r.line(IconX, r.theme.ErrorStyle, "Portal", "no session bus or xdg-desktop-portal"))
	}

	if report.DesktopInstalled {
		lines = append(lines, r.line(IconCheck, r.theme.SuccessStyle, "Desktop entry", report.DesktopPath))
	} else {
		lines = append(lines, r.line(IconWarning, r.theme.WarningStyle, "Desktop entry", "missing, run 'bridgehost setup install'"))
	}
	return strings.Join(lines, "\n")
}

func (r *DoctorRenderer) line(icon string, style lipgloss.Style, name, info string) string {
	return fmt.Sprintf("  %s %s  %s", style.Render(icon), r.theme.Normal.Render(name), r.theme.Subtle.Render(info))
}
