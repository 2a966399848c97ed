package protocol

import (
	"go.uber.org/zap"
)

// Request is an intercepted request as the host hands it over. The URL
// may be empty when the host failed to attach one.
type Request struct {
	Scheme string `json:"scheme"`
	URL    string `json:"url"`
}

// Decision is the gate's verdict for a single request. Exactly one of
// the two shapes occurs: Allowed with the canonical path, or denied
// with a net error code and no path.
type Decision struct {
	Allowed bool   `json:"-"`
	Path    string `json:"path,omitempty"`
	Code    int    `json:"error_code,omitempty"`
}

// Handler decides a single intercepted request for one scheme.
type Handler func(Request) Decision

// Gate runs the decode → canonicalize → validate pipeline for the file
// scheme. All fields are set at construction and read-only afterwards;
// concurrent requests need no coordination.
type Gate struct {
	platform Platform
	canon    *Canonicalizer
	allow    *AllowList
	logger   *zap.Logger
}

// NewGate builds the file-scheme gate over an allow list.
func NewGate(platform Platform, allow *AllowList, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		platform: platform,
		canon:    NewCanonicalizer(platform),
		allow:    allow,
		logger:   logger,
	}
}

// Handle decides one request. A request with no URL gets the
// invalid-URL code; every other failure collapses to the generic
// access-denied code. The distinguishing detail is logged locally and
// never surfaces to the caller, so stage failures are indistinguishable
// from legitimate denials. Failures are terminal: nothing is retried,
// and no failure affects subsequent requests.
func (g *Gate) Handle(req Request) Decision {
	if req.URL == "" {
		g.logger.Warn("file request denied", zap.String("reason", ErrMissingURL.Error()))
		return Decision{Code: NetErrInvalidURL}
	}

	raw, err := DecodeFileURL(req.URL, g.platform)
	if err != nil {
		return g.deny(req.URL, err)
	}

	resolved, err := g.canon.Resolve(raw)
	if err != nil {
		return g.deny(req.URL, err)
	}

	if err := g.allow.Check(resolved); err != nil {
		return g.deny(req.URL, err)
	}

	return Decision{Allowed: true, Path: resolved.Real}
}

func (g *Gate) deny(url string, err error) Decision {
	reason := "denied without detail"
	if err != nil {
		reason = err.Error()
	}
	g.logger.Warn("file request denied",
		zap.String("url", url),
		zap.String("reason", reason),
	)
	return Decision{Code: NetErrAccessDenied}
}
