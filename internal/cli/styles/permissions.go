package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

// CapabilityLine is one row of the OS status report.
type CapabilityLine struct {
	Capability entity.Capability
	Status     entity.OSPermissionStatus
	Err        error
}

// PermissionStatusRenderer renders the OS camera/microphone status.
type PermissionStatusRenderer struct {
	theme *Theme
}

// NewPermissionStatusRenderer creates a renderer.
func NewPermissionStatusRenderer(theme *Theme) *PermissionStatusRenderer {
	return &PermissionStatusRenderer{theme: theme}
}

// Render lists each capability with its status. last may be nil.
func (r *PermissionStatusRenderer) Render(lines []CapabilityLine, last *entity.OSPermissionResult) string {
	t := r.theme
	out := []string{t.Title.Render(IconShield + " OS media permissions"), ""}

	for _, l := range lines {
		icon := IconVideo
		if l.Capability == entity.CapabilityMicrophone {
			icon = IconMic
		}
		row := fmt.Sprintf("  %s %-11s %s", icon, l.Capability, t.OSStatusStyle(l.Status).Render(string(l.Status)))
		if l.Err != nil {
			row += "  " + t.Subtle.Render(l.Err.Error())
		}
		out = append(out, row)
	}

	if last != nil {
		out = append(out, "", t.Subtitle.Render(fmt.Sprintf("Last request (code %d, %s)", last.RequestCode, RelativeTime(last.ReceivedAt))))
		for _, c := range entity.MediaCapabilities() {
			if s, ok := last.Statuses[c]; ok {
				out = append(out, fmt.Sprintf("  %-11s %s", c, t.OSStatusStyle(s).Render(string(s))))
			}
		}
	}

	return strings.Join(out, "\n")
}

// RenderRequestOutcome summarizes a completed OS request.
func (r *PermissionStatusRenderer) RenderRequestOutcome(result entity.OSPermissionResult) string {
	t := r.theme
	if result.AllGranted() {
		return t.SuccessStyle.Render(IconCheck + " camera and microphone granted")
	}
	denied := make([]string, 0, 2)
	for _, c := range result.Denied() {
		denied = append(denied, string(c))
	}
	return t.ErrorStyle.Render(IconX + " denied: " + strings.Join(denied, ", "))
}
