// Package registry wires intercept handlers into the host's protocol
// subsystem. It is the concrete form of the per-scheme registration
// contract: one handler per scheme name, installed at startup.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/emberchat/backend/internal/protocol"
)

// Registry maps scheme names to intercept handlers.
type Registry struct {
	handlers sync.Map
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register installs the handler for a scheme name. Registering the same
// scheme twice replaces the earlier handler.
func (r *Registry) Register(scheme string, h protocol.Handler) error {
	if scheme == "" {
		return fmt.Errorf("scheme cannot be empty")
	}
	if h == nil {
		return fmt.Errorf("handler cannot be nil for scheme %s", scheme)
	}
	r.handlers.Store(scheme, h)
	return nil
}

// Dispatch routes a request to its scheme's handler. A scheme with no
// registered handler is denied outright: interception must fail closed.
func (r *Registry) Dispatch(scheme string, req protocol.Request) protocol.Decision {
	val, ok := r.handlers.Load(scheme)
	if !ok {
		return protocol.Decision{Code: protocol.NetErrAccessDenied}
	}
	return val.(protocol.Handler)(req)
}

// Schemes returns the registered scheme names in sorted order.
func (r *Registry) Schemes() []string {
	var schemes []string
	r.handlers.Range(func(key, _ interface{}) bool {
		schemes = append(schemes, key.(string))
		return true
	})
	sort.Strings(schemes)
	return schemes
}

// Stats returns registry statistics for the health surface.
func (r *Registry) Stats() map[string]interface{} {
	schemes := r.Schemes()
	return map[string]interface{}{
		"total_schemes": len(schemes),
		"schemes":       schemes,
	}
}
