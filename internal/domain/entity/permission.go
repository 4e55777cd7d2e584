package entity

import "time"

// MediaPermissionsRequestCode tags the combined camera+microphone OS request.
const MediaPermissionsRequestCode = 2001

// Capability is a permission an origin can hold. Camera and microphone are also OS runtime permissions.
type Capability string

const (
	// CapabilityCamera represents camera access.
	CapabilityCamera Capability = "camera"

	// CapabilityMicrophone represents microphone access.
	CapabilityMicrophone Capability = "microphone"

	// CapabilityDisplay represents screen sharing. Allow-list only, never asked of the OS.
	CapabilityDisplay Capability = "display"

	// CapabilityDeviceInfo represents media device enumeration. Allow-list only.
	CapabilityDeviceInfo Capability = "device-info"
)

// MediaCapabilities returns the capabilities requested as a single batch, in request order.
func MediaCapabilities() []Capability {
	return []Capability{CapabilityCamera, CapabilityMicrophone}
}

// ParseCapability converts a user or config supplied name into a Capability.
func ParseCapability(s string) (Capability, bool) {
	switch Capability(s) {
	case CapabilityCamera:
		return CapabilityCamera, true
	case CapabilityMicrophone:
		return CapabilityMicrophone, true
	case "mic", "audio":
		return CapabilityMicrophone, true
	case "video":
		return CapabilityCamera, true
	case CapabilityDisplay, "screen":
		return CapabilityDisplay, true
	case CapabilityDeviceInfo, "devices":
		return CapabilityDeviceInfo, true
	default:
		return "", false
	}
}

// OSPermissionStatus is the OS-owned grant state for a capability.
type OSPermissionStatus string

const (
	// OSPermissionGranted means the OS allows access.
	OSPermissionGranted OSPermissionStatus = "granted"

	// OSPermissionDenied means the user denied access. The app may ask again.
	OSPermissionDenied OSPermissionStatus = "denied"

	// OSPermissionPermanentlyDenied means the OS will not show the dialog again.
	OSPermissionPermanentlyDenied OSPermissionStatus = "permanently_denied"

	// OSPermissionNotDetermined means the user has never been asked.
	OSPermissionNotDetermined OSPermissionStatus = "not_determined"

	// OSPermissionRestricted means a system policy prevents granting.
	OSPermissionRestricted OSPermissionStatus = "restricted"

	// OSPermissionUnknown means the status could not be determined.
	OSPermissionUnknown OSPermissionStatus = "unknown"
)

// IsGranted returns true if the status allows capture.
func (s OSPermissionStatus) IsGranted() bool {
	return s == OSPermissionGranted
}

// MediaResource identifies a resource named by an in-page media request.
type MediaResource string

const (
	// MediaResourceVideoCapture is a camera stream.
	MediaResourceVideoCapture MediaResource = "video-capture"

	// MediaResourceAudioCapture is a microphone stream.
	MediaResourceAudioCapture MediaResource = "audio-capture"

	// MediaResourceDisplayCapture is a screen share stream.
	MediaResourceDisplayCapture MediaResource = "display-capture"

	// MediaResourceDeviceInfo is media device enumeration.
	MediaResourceDeviceInfo MediaResource = "device-info"
)

// Capability returns the capability an allow-list must name to grant the resource.
// Only camera and microphone are backed by an OS permission.
func (r MediaResource) Capability() (Capability, bool) {
	switch r {
	case MediaResourceVideoCapture:
		return CapabilityCamera, true
	case MediaResourceAudioCapture:
		return CapabilityMicrophone, true
	case MediaResourceDisplayCapture:
		return CapabilityDisplay, true
	case MediaResourceDeviceInfo:
		return CapabilityDeviceInfo, true
	default:
		return "", false
	}
}

// MediaResourcesToStrings converts resources to strings for logging and storage.
func MediaResourcesToStrings(resources []MediaResource) []string {
	result := make([]string, len(resources))
	for i, r := range resources {
		result[i] = string(r)
	}
	return result
}

// MediaResourcesFromStrings is the inverse of MediaResourcesToStrings.
func MediaResourcesFromStrings(values []string) []MediaResource {
	result := make([]MediaResource, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		result = append(result, MediaResource(v))
	}
	return result
}

// GrantDecision is the outcome of an in-page media request.
type GrantDecision string

const (
	// GrantAllowed means every requested resource was granted.
	GrantAllowed GrantDecision = "granted"

	// GrantPartial means a subset of the requested resources was granted.
	GrantPartial GrantDecision = "partial"

	// GrantRefused means the request was denied.
	GrantRefused GrantDecision = "denied"
)

// GrantRecord is one entry of the in-page grant log.
type GrantRecord struct {
	ID         int64
	Origin     string
	Requested  []MediaResource
	Granted    []MediaResource
	Decision   GrantDecision
	PolicyMode PolicyMode
	CreatedAt  time.Time
}

// IsGranted returns true if at least one resource was granted.
func (g *GrantRecord) IsGranted() bool {
	return g.Decision == GrantAllowed || g.Decision == GrantPartial
}

// OSPermissionResult is the OS answer to a batched runtime permission request.
type OSPermissionResult struct {
	RequestCode int
	Statuses    map[Capability]OSPermissionStatus
	ReceivedAt  time.Time
}

// AllGranted returns true if every capability in the result was granted.
func (r OSPermissionResult) AllGranted() bool {
	if len(r.Statuses) == 0 {
		return false
	}
	for _, status := range r.Statuses {
		if !status.IsGranted() {
			return false
		}
	}
	return true
}

// Denied returns the capabilities that were not granted, in request order.
func (r OSPermissionResult) Denied() []Capability {
	var denied []Capability
	for _, c := range MediaCapabilities() {
		status, ok := r.Statuses[c]
		if ok && !status.IsGranted() {
			denied = append(denied, c)
		}
	}
	return denied
}
