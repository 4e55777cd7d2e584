package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

// sectionOrder is the display order of config sections.
var sectionOrder = []string{"General", "Permissions", "Logging", "Database", "Window"}

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the configuration schema in styled format.
// Sections missing from the known order are appended at the end.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	sections := make(map[string][]entity.ConfigKeyInfo)
	var extra []string
	for _, key := range keys {
		if _, ok := sections[key.Section]; !ok && !knownSection(key.Section) {
			extra = append(extra, key.Section)
		}
		sections[key.Section] = append(sections[key.Section], key)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	parts := []string{
		fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Schema Reference")),
		"",
	}
	for _, section := range append(append([]string{}, sectionOrder...), extra...) {
		if sectionKeys, ok := sections[section]; ok {
			parts = append(parts, r.renderSection(section, sectionKeys), "")
		}
	}

	return strings.Join(parts, "\n")
}

// RenderJSON renders the configuration schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func knownSection(name string) bool {
	for _, s := range sectionOrder {
		if s == name {
			return true
		}
	}
	return false
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}

	boxContent := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.PaddingTop(0).Render(boxContent)
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	keyStyle := r.theme.Normal.Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	result := fmt.Sprintf(
		"%s  %s  %s\n  %s",
		keyStyle.Render(key.Key),
		r.theme.Subtle.Render(key.Type),
		defaultStyle.Render(key.Default),
		r.theme.Subtle.Render(key.Description),
	)

	if len(key.Values) > 0 {
		result += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", "))
	} else if key.Range != "" {
		result += "\n  " + r.theme.Normal.Render("Range: "+key.Range)
	}

	return result
}
