package port

import (
	"context"
	"errors"
	"fmt"
)

// PkgConfigErrorKind describes the category of a pkg-config failure.
type PkgConfigErrorKind string

const (
	PkgConfigErrorKindCommandMissing PkgConfigErrorKind = "command_missing"
	PkgConfigErrorKindPackageMissing PkgConfigErrorKind = "package_missing"
)

var (
	// ErrPkgConfigMissing indicates pkg-config is not installed.
	ErrPkgConfigMissing = errors.New("pkg-config missing")
	// ErrPkgConfigPackageMissing indicates the requested .pc package was not found.
	ErrPkgConfigPackageMissing = errors.New("pkg-config package missing")
)

// PkgConfigError wraps a failed pkg-config probe.
type PkgConfigError struct {
	Kind    PkgConfigErrorKind
	Package string
	Output  string
	Err     error
}

func (e *PkgConfigError) Error() string {
	msg := fmt.Sprintf("pkg-config (%s): %s", e.Kind, e.Package)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *PkgConfigError) Unwrap() error {
	return e.Err
}

// RuntimeVersionProbe reports installed versions of native libraries.
type RuntimeVersionProbe interface {
	ModVersion(ctx context.Context, pkgName string) (string, error)
}
