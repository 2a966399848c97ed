// Package protocol implements the request-time security gate for the
// file scheme.
//
// Every intercepted file request runs through a single synchronous
// pipeline: decode the URL into a raw path, canonicalize the path
// (symlink resolution and platform case-folding included), and check
// the result against the immutable set of allowed roots. The outcome is
// always exactly one of two decisions:
//   - Allowed, carrying the canonical resolved path
//   - Denied, carrying a net error code for the rendering layer
//
// Denial causes are deliberately indistinguishable to the caller: all
// internal failures collapse to the generic access-denied code, and the
// distinguishing detail goes to the local log only. The one exception
// is a request with no URL at all, which gets its own code.
//
// The package also carries the stateless deny-all handler and the
// enumeration of schemes the application disables outright.
package protocol
