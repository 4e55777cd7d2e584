package styles

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago      time.Duration
		expected string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{14 * 24 * time.Hour, "2w ago"},
		{60 * 24 * time.Hour, "2mo ago"},
		{800 * 24 * time.Hour, "2y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, relativeTo(now, now.Add(-tt.ago)))
		})
	}
}

func TestGrantRow(t *testing.T) {
	row := GrantRow(&entity.GrantRecord{
		Requested:  []entity.MediaResource{entity.MediaResourceVideoCapture, entity.MediaResourceAudioCapture},
		Decision:   entity.GrantAllowed,
		PolicyMode: entity.PolicyGrantAll,
		CreatedAt:  time.Now(),
	})

	assert.Len(t, row, len(GrantTableColumns()))
	assert.Equal(t, "(unknown)", row[1])
	assert.Equal(t, "video-capture, audio-capture", row[2])
	assert.Equal(t, "granted", row[3])
}

func TestConfigSchemaRenderer_KeepsUnknownSections(t *testing.T) {
	out := NewConfigSchemaRenderer(NewTheme()).Render([]entity.ConfigKeyInfo{
		{Key: "window.width", Section: "Window", Range: "320-7680"},
		{Key: "extra.key", Section: "Extra"},
		{Key: "permissions.policy.mode", Section: "Permissions", Values: []string{"grant_all", "allow_list"}},
	})

	assert.Contains(t, out, "window.width")
	assert.Contains(t, out, "extra.key")
	assert.Contains(t, out, "Values: grant_all, allow_list")
	assert.Contains(t, out, "Range: 320-7680")
	assert.Less(t, strings.Index(out, "permissions.policy.mode"), strings.Index(out, "window.width"))
	assert.Less(t, strings.Index(out, "window.width"), strings.Index(out, "extra.key"))
}

func TestPermissionStatusRenderer(t *testing.T) {
	r := NewPermissionStatusRenderer(NewTheme())

	out := r.Render([]CapabilityLine{
		{Capability: entity.CapabilityCamera, Status: entity.OSPermissionGranted},
		{Capability: entity.CapabilityMicrophone, Status: entity.OSPermissionUnknown, Err: errors.New("portal down")},
	}, nil)
	assert.Contains(t, out, "camera")
	assert.Contains(t, out, "portal down")

	denied := r.RenderRequestOutcome(entity.OSPermissionResult{
		RequestCode: entity.MediaPermissionsRequestCode,
		Statuses: map[entity.Capability]entity.OSPermissionStatus{
			entity.CapabilityCamera:     entity.OSPermissionGranted,
			entity.CapabilityMicrophone: entity.OSPermissionDenied,
		},
	})
	assert.Contains(t, denied, "denied: microphone")
}

func TestDoctorRenderer_Render(t *testing.T) {
	r := NewDoctorRenderer(NewTheme())
	out := r.Render(DoctorReport{
		Runtime: []DoctorRuntimeCheck{
			{Name: "GTK4", Installed: true, Version: "4.16.2", RequiredVersion: "4.10", OK: true},
			{Name: "WebKitGTK 6.0", Installed: true, Version: "2.38.0", RequiredVersion: "2.40"},
			{Name: "GStreamer", Error: "pkg-config (package_missing): gstreamer-1.0"},
		},
		DesktopInstalled: true,
		DesktopPath:      "/home/u/.local/share/applications/io.example.Host.desktop",
	})

	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "4.16.2 (>= 4.10)")
	assert.Contains(t, out, "have 2.38.0, need >= 2.40")
	assert.Contains(t, out, "gstreamer-1.0")
	assert.Contains(t, out, "headless")
	assert.Contains(t, out, "no session bus")
	assert.Contains(t, out, "io.example.Host.desktop")
}
