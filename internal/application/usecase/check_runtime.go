package usecase

import (
	"context"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/logging"
)

// RuntimeDependencyStatus is the result of checking one native library.
type RuntimeDependencyStatus struct {
	PkgConfigName string
	DisplayName   string

	Installed bool
	Version   string

	RequiredVersion  string
	MeetsRequirement bool

	Error string
}

// runtimeRequirements lists what the WebKit bridge needs for in-page capture.
// capture-state properties and the v6 API need WebKitGTK 2.40.
var runtimeRequirements = []RuntimeDependencyStatus{
	{PkgConfigName: "gtk4", DisplayName: "GTK4", RequiredVersion: "4.10"},
	{PkgConfigName: "webkitgtk-6.0", DisplayName: "WebKitGTK 6.0", RequiredVersion: "2.40"},
	{PkgConfigName: "gstreamer-1.0", DisplayName: "GStreamer", RequiredVersion: "1.20"},
}

// CheckRuntimeUseCase validates the native runtime of the host window.
type CheckRuntimeUseCase struct {
	probe port.RuntimeVersionProbe
}

// NewCheckRuntimeUseCase creates the use case.
func NewCheckRuntimeUseCase(probe port.RuntimeVersionProbe) *CheckRuntimeUseCase {
	return &CheckRuntimeUseCase{probe: probe}
}

// CheckRuntimeOutput contains every check and whether all passed.
type CheckRuntimeOutput struct {
	OK     bool
	Checks []RuntimeDependencyStatus
}

// Execute probes each library. Probe failures are reported in the output, not returned.
func (uc *CheckRuntimeUseCase) Execute(ctx context.Context) *CheckRuntimeOutput {
	log := logging.FromContext(ctx).With().Str("component", "runtime-check").Logger()

	out := &CheckRuntimeOutput{OK: true, Checks: make([]RuntimeDependencyStatus, len(runtimeRequirements))}
	copy(out.Checks, runtimeRequirements)

	for i := range out.Checks {
		status := &out.Checks[i]

		version, err := uc.probe.ModVersion(ctx, status.PkgConfigName)
		if err != nil {
			status.Error = err.Error()
			out.OK = false
			continue
		}
		status.Installed = true
		status.Version = version

		cmp, ok := compareVersion(status.Version, status.RequiredVersion)
		if !ok {
			status.Error = "could not parse version"
			out.OK = false
			continue
		}
		status.MeetsRequirement = cmp >= 0
		if !status.MeetsRequirement {
			out.OK = false
		}
	}

	log.Debug().Bool("ok", out.OK).Msg("runtime check complete")
	return out
}

// compareVersion returns 1 if a > b, 0 if equal, -1 if a < b.
// ok is false if either cannot be parsed.
func compareVersion(a, b string) (cmp int, ok bool) {
	av, ok := parseVersionPrefix(a)
	if !ok {
		return 0, false
	}
	bv, ok := parseVersionPrefix(b)
	if !ok {
		return 0, false
	}

	for i := 0; i < max(len(av), len(bv)); i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		switch {
		case x > y:
			return 1, true
		case x < y:
			return -1, true
		}
	}
	return 0, true
}

// parseVersionPrefix parses a dotted numeric prefix such as "2.44.1-beta".
func parseVersionPrefix(s string) ([]int, bool) {
	var parts []int
	cur, inNum := 0, false

loop:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			inNum = true
			cur = cur*10 + int(c-'0')
		case c == '.':
			if !inNum {
				return nil, false
			}
			parts = append(parts, cur)
			cur, inNum = 0, false
		default:
			break loop
		}
	}

	if inNum {
		parts = append(parts, cur)
	}
	return parts, len(parts) > 0
}
