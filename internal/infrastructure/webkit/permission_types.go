package webkit

import "github.com/bnema/bridgehost/internal/domain/entity"

type permissionRequestKind int

const (
	permissionRequestKindUnknown permissionRequestKind = iota
	permissionRequestKindUserMedia
	permissionRequestKindDeviceInfo
)

// classifyUserMediaPermissionTypes maps the getUserMedia device flags to resources.
// WebKit reports screen capture with every flag false on some versions, so an
// all-false request is treated as display capture.
func classifyUserMediaPermissionTypes(isAudio, isVideo, isDisplay bool) []entity.MediaResource {
	var resources []entity.MediaResource
	if isVideo {
		resources = append(resources, entity.MediaResourceVideoCapture)
	}
	if isAudio {
		resources = append(resources, entity.MediaResourceAudioCapture)
	}
	if isDisplay || (!isAudio && !isVideo) {
		resources = append(resources, entity.MediaResourceDisplayCapture)
	}
	return resources
}

// classifyPermissionRequestTypes returns nil for requests the host does not handle.
func classifyPermissionRequestTypes(kind permissionRequestKind, isAudio, isVideo, isDisplay bool) []entity.MediaResource {
	switch kind {
	case permissionRequestKindUserMedia:
		return classifyUserMediaPermissionTypes(isAudio, isVideo, isDisplay)
	case permissionRequestKindDeviceInfo:
		return []entity.MediaResource{entity.MediaResourceDeviceInfo}
	default:
		return nil
	}
}
