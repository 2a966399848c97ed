package protocol

import (
	"fmt"
	"net/url"
	"strings"
)

// Scheme prefixes stripped from decoded URLs. The renderer produces
// file:///C:/... on Windows, so the third slash is consumed with the
// prefix there; elsewhere file:// leaves the leading slash in place.
// The caller guarantees the scheme is already file, so this is not
// general URI parsing.
const (
	schemePrefixPosix   = "file://"
	schemePrefixWindows = "file:///"
)

// DecodeFileURL converts a file-scheme URL into a raw filesystem path.
//
// The URL is percent-decoded first; malformed escape sequences are a
// decode failure. A decoded string starting with // is a UNC-style
// target with no scheme marker and passes through unmodified — home
// directories redirected to network shares arrive this way. Otherwise
// the platform scheme prefix must be present and is stripped. Query
// string and fragment are truncated at their first occurrence, query
// first.
//
// No path validation happens here; adversarial output is caught by the
// canonicalizer and the allow-list.
func DecodeFileURL(rawURL string, platform Platform) (string, error) {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var path string
	if strings.HasPrefix(decoded, "//") {
		path = decoded
	} else {
		prefix := schemePrefixPosix
		if platform.Windows {
			prefix = schemePrefixWindows
		}
		if !strings.HasPrefix(decoded, prefix) {
			return "", fmt.Errorf("%w: missing %q prefix", ErrDecode, prefix)
		}
		path = decoded[len(prefix):]
	}

	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '#'); i >= 0 {
		path = path[:i]
	}
	return path, nil
}
