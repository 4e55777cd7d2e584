package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

func TestClassifyUserMediaPermissionTypes(t *testing.T) {
	tests := []struct {
		name      string
		isAudio   bool
		isVideo   bool
		isDisplay bool
		expected  []entity.MediaResource
	}{
		{
			name:     "audio and camera",
			isAudio:  true,
			isVideo:  true,
			expected: []entity.MediaResource{entity.MediaResourceVideoCapture, entity.MediaResourceAudioCapture},
		},
		{
			name:     "camera only",
			isVideo:  true,
			expected: []entity.MediaResource{entity.MediaResourceVideoCapture},
		},
		{
			name:     "microphone only",
			isAudio:  true,
			expected: []entity.MediaResource{entity.MediaResourceAudioCapture},
		},
		{
			name:      "screen only",
			isDisplay: true,
			expected:  []entity.MediaResource{entity.MediaResourceDisplayCapture},
		},
		{
			name:      "screen with audio",
			isAudio:   true,
			isDisplay: true,
			expected:  []entity.MediaResource{entity.MediaResourceAudioCapture, entity.MediaResourceDisplayCapture},
		},
		{
			name:     "display fallback when all flags false",
			expected: []entity.MediaResource{entity.MediaResourceDisplayCapture},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyUserMediaPermissionTypes(tt.isAudio, tt.isVideo, tt.isDisplay))
		})
	}
}

func TestClassifyPermissionRequestTypes(t *testing.T) {
	tests := []struct {
		name     string
		kind     permissionRequestKind
		isAudio  bool
		isVideo  bool
		expected []entity.MediaResource
	}{
		{
			name:     "device info request",
			kind:     permissionRequestKindDeviceInfo,
			expected: []entity.MediaResource{entity.MediaResourceDeviceInfo},
		},
		{
			name:     "user media camera",
			kind:     permissionRequestKindUserMedia,
			isVideo:  true,
			expected: []entity.MediaResource{entity.MediaResourceVideoCapture},
		},
		{
			name:     "unknown request is not handled",
			kind:     permissionRequestKindUnknown,
			isAudio:  true,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyPermissionRequestTypes(tt.kind, tt.isAudio, tt.isVideo, false))
		})
	}
}
