// Package deps probes the native libraries the WebKit bridge links against.
package deps

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bnema/bridgehost/internal/application/port"
)

// PkgConfigProbe uses pkg-config to query module versions.
type PkgConfigProbe struct {
	lookPath func(string) (string, error)
}

var _ port.RuntimeVersionProbe = (*PkgConfigProbe)(nil)

// NewPkgConfigProbe creates a probe that runs pkg-config from PATH.
func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{lookPath: exec.LookPath}
}

// ModVersion returns the trimmed output of `pkg-config --modversion pkgName`.
func (p *PkgConfigProbe) ModVersion(ctx context.Context, pkgName string) (string, error) {
	pc, err := p.lookPath("pkg-config")
	if err != nil {
		return "", &port.PkgConfigError{
			Kind:    port.PkgConfigErrorKindCommandMissing,
			Package: pkgName,
			Err:     port.ErrPkgConfigMissing,
		}
	}

	out, err := exec.CommandContext(ctx, pc, "--modversion", pkgName).CombinedOutput()
	if err != nil {
		return "", &port.PkgConfigError{
			Kind:    port.PkgConfigErrorKindPackageMissing,
			Package: pkgName,
			Output:  strings.TrimSpace(string(out)),
			Err:     port.ErrPkgConfigPackageMissing,
		}
	}
	return strings.TrimSpace(string(out)), nil
}
