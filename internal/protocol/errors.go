package protocol

import "errors"

// Net error codes surfaced to the rendering layer. The values come from
// the Chromium net error enumeration so the renderer reports them the
// same way it reports its own failures.
const (
	// NetErrAccessDenied covers every denial except a missing URL:
	// decode failures, canonicalization failures, non-absolute paths,
	// and allow-list misses all map here.
	NetErrAccessDenied = -10

	// NetErrInvalidURL is used only when the request carries no URL.
	NetErrInvalidURL = -300
)

// Stage errors for the pipeline. The gate pattern-matches on these;
// everything except ErrMissingURL collapses to NetErrAccessDenied
// before leaving the process.
var (
	ErrMissingURL   = errors.New("request carries no URL")
	ErrDecode       = errors.New("url decode failed")
	ErrCanonicalize = errors.New("path canonicalization failed")
	ErrNotAbsolute  = errors.New("resolved path is not absolute")
	ErrNotAllowed   = errors.New("path is outside every allowed root")
)
