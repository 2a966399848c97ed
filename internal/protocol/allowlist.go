package protocol

import (
	"fmt"
	"strings"
)

// AllowList is the immutable, ordered set of approved root directories.
// It is built once at startup and never mutated, so concurrent requests
// read it without locking.
type AllowList struct {
	platform Platform
	roots    []allowedRoot
}

type allowedRoot struct {
	display string // canonical form, original case
	folded  string // comparison form, no trailing separator
}

// NewAllowList builds the allow list from absolute root directories.
//
// Each root passes through the same canonicalizer applied to request
// paths, so a root that is itself reached through a symlink compares
// equal to resolved request paths. A root that fails canonicalization
// or is not absolute is a startup error, never a silent skip.
func NewAllowList(platform Platform, dirs ...string) (*AllowList, error) {
	canon := NewCanonicalizer(platform)
	al := &AllowList{platform: platform}
	sep := platform.Separator()

	for _, dir := range dirs {
		resolved, err := canon.Resolve(dir)
		if err != nil {
			return nil, fmt.Errorf("canonicalize root %s: %w", dir, err)
		}
		if !platform.IsAbs(resolved.Real) {
			return nil, fmt.Errorf("allowed root must be absolute: %s", dir)
		}
		al.roots = append(al.roots, allowedRoot{
			display: resolved.Real,
			folded:  strings.TrimSuffix(resolved.Folded, sep),
		})
	}
	return al, nil
}

// Check validates a resolved path against the allow list.
//
// Non-absolute paths are rejected unconditionally. Containment is
// segment-boundary aware: a path matches a root only when it equals the
// root or extends it past a separator, so a sibling directory whose
// name merely extends a root's name as a string does not match. The
// first matching root short-circuits the scan.
func (al *AllowList) Check(resolved Resolved) error {
	if !al.platform.IsAbs(resolved.Real) {
		return fmt.Errorf("%w: %s", ErrNotAbsolute, resolved.Real)
	}

	sep := al.platform.Separator()
	for _, root := range al.roots {
		if resolved.Folded == root.folded || strings.HasPrefix(resolved.Folded, root.folded+sep) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotAllowed, resolved.Real)
}

// Roots returns the canonical allowed roots in matching order.
func (al *AllowList) Roots() []string {
	out := make([]string, len(al.roots))
	for i, root := range al.roots {
		out[i] = root.display
	}
	return out
}
