package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// DecisionBadge renders a grant decision with its semantic color.
func (t *Theme) DecisionBadge(d entity.GrantDecision) string {
	switch d {
	case entity.GrantAllowed:
		return t.StatusBadge(string(d), t.Background, t.Success)
	case entity.GrantPartial:
		return t.StatusBadge(string(d), t.Background, t.Warning)
	default:
		return t.StatusBadge(string(d), t.Text, t.Error)
	}
}

// OSStatusStyle picks the text style for an OS permission status.
func (t *Theme) OSStatusStyle(s entity.OSPermissionStatus) lipgloss.Style {
	switch s {
	case entity.OSPermissionGranted:
		return t.SuccessStyle
	case entity.OSPermissionNotDetermined, entity.OSPermissionUnknown:
		return t.WarningStyle
	default:
		return t.ErrorStyle
	}
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTo(time.Now(), tm)
}

func relativeTo(now, tm time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
