package protocol

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resolved carries both forms of a canonicalized path: the real path
// returned to callers (original case) and the folded form used for
// allow-list matching.
type Resolved struct {
	Real   string
	Folded string
}

// Canonicalizer normalizes raw paths for the configured platform and
// resolves symlinks when the target exists on disk. It is stateless and
// safe for concurrent use.
type Canonicalizer struct {
	platform Platform
}

// NewCanonicalizer returns a canonicalizer for the platform.
func NewCanonicalizer(platform Platform) *Canonicalizer {
	return &Canonicalizer{platform: platform}
}

// Resolve normalizes path syntax, follows symlinks to their ultimate
// target when the path exists, and computes the folded comparison form.
//
// Symlink resolution must run before the allow-list check: a link
// inside an allowed root pointing outside it resolves to the outside
// target here and is then rejected by the validator. A path that does
// not exist keeps its normalized form — whether it is acceptable is the
// allow-list's decision, not the filesystem's.
func (c *Canonicalizer) Resolve(raw string) (Resolved, error) {
	normalized := c.normalize(raw)

	real := normalized
	if _, err := os.Stat(normalized); err == nil {
		real, err = filepath.EvalSymlinks(normalized)
		if err != nil {
			return Resolved{}, fmt.Errorf("%w: %v", ErrCanonicalize, err)
		}
	} else if !os.IsNotExist(err) {
		return Resolved{}, fmt.Errorf("%w: %v", ErrCanonicalize, err)
	}

	return Resolved{Real: real, Folded: c.platform.fold(real)}, nil
}

// normalize cleans redundant segments (., .., duplicate separators) and
// converts separators to the platform's syntax. Cleaning runs in slash
// form so the same lexical rules apply regardless of the host OS; the
// UNC marker and the Windows volume name are carried around the clean,
// which would otherwise swallow them.
func (c *Canonicalizer) normalize(raw string) string {
	if !c.platform.Windows {
		cleaned := path.Clean(raw)
		if strings.HasPrefix(raw, "//") && !strings.HasPrefix(cleaned, "//") {
			cleaned = "/" + cleaned
		}
		return cleaned
	}

	slashed := strings.ReplaceAll(raw, `\`, "/")
	unc := strings.HasPrefix(slashed, "//")

	var vol string
	if len(slashed) >= 2 && slashed[1] == ':' && isDriveLetter(slashed[0]) {
		vol = slashed[:2]
		slashed = slashed[2:]
	}

	cleaned := path.Clean(slashed)
	if unc && !strings.HasPrefix(cleaned, "//") {
		cleaned = "/" + cleaned
	}
	return vol + strings.ReplaceAll(cleaned, "/", `\`)
}
