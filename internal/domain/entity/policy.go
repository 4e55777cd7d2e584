package entity

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidPolicy is returned when a grant policy cannot be evaluated.
var ErrInvalidPolicy = errors.New("invalid grant policy")

// PolicyMode selects how in-page media requests are decided.
type PolicyMode string

const (
	// PolicyGrantAll grants every requested resource for every origin.
	PolicyGrantAll PolicyMode = "grant_all"

	// PolicyAllowList grants only the capabilities listed for the requesting origin.
	PolicyAllowList PolicyMode = "allow_list"
)

// GrantPolicy decides which resources of an in-page request are granted.
type GrantPolicy struct {
	Mode PolicyMode
	// AllowList maps a normalized origin (scheme://host[:port]) to its allowed capabilities.
	// The origin "*" applies to every origin.
	AllowList map[string][]Capability
}

// DefaultGrantPolicy grants everything.
func DefaultGrantPolicy() GrantPolicy {
	return GrantPolicy{Mode: PolicyGrantAll}
}

// Validate checks the mode and every allow-list entry.
func (p GrantPolicy) Validate() error {
	switch p.Mode {
	case PolicyGrantAll:
		return nil
	case PolicyAllowList:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidPolicy, p.Mode)
	}
	for origin, caps := range p.AllowList {
		if origin != "*" {
			if _, err := NormalizeOrigin(origin); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
			}
		}
		for _, c := range caps {
			if _, ok := ParseCapability(string(c)); !ok {
				return fmt.Errorf("%w: origin %q lists unknown capability %q", ErrInvalidPolicy, origin, c)
			}
		}
	}
	return nil
}

// Evaluate returns the subset of requested resources the policy grants.
// Under PolicyGrantAll the requested slice is returned as is.
// Under PolicyAllowList a resource is granted only when the origin's entries
// name its capability; display and device-info must be listed like camera.
func (p GrantPolicy) Evaluate(origin string, requested []MediaResource) []MediaResource {
	if p.Mode != PolicyAllowList {
		return requested
	}

	allowed, listed := p.allowedFor(origin)
	if !listed {
		return nil
	}

	granted := make([]MediaResource, 0, len(requested))
	for _, r := range requested {
		if c, ok := r.Capability(); ok && allowed[c] {
			granted = append(granted, r)
		}
	}
	return granted
}

func (p GrantPolicy) allowedFor(origin string) (map[Capability]bool, bool) {
	allowed := make(map[Capability]bool)
	listed := false

	merge := func(caps []Capability) {
		listed = true
		for _, c := range caps {
			if parsed, ok := ParseCapability(string(c)); ok {
				allowed[parsed] = true
			}
		}
	}

	if caps, ok := p.AllowList["*"]; ok {
		merge(caps)
	}
	normalized, err := NormalizeOrigin(origin)
	if err != nil {
		return allowed, listed
	}
	for key, caps := range p.AllowList {
		if key == "*" {
			continue
		}
		if k, kerr := NormalizeOrigin(key); kerr == nil && k == normalized {
			merge(caps)
		}
	}
	return allowed, listed
}

// NormalizeOrigin reduces a URI to its lower-cased scheme://host[:port] origin.
func NormalizeOrigin(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty origin")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse origin %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("origin %q must be scheme://host", raw)
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), nil
}

// DecisionFor classifies a grant given what was requested.
func DecisionFor(requested, granted []MediaResource) GrantDecision {
	switch {
	case len(granted) == 0:
		return GrantRefused
	case len(granted) < len(requested):
		return GrantPartial
	default:
		return GrantAllowed
	}
}
