// Package server wires the protocol gate into the local broker surface
// the application shell consults: a loopback gin server exposing the
// resolve endpoint, liveness, and metrics. The broker never maps gate
// decisions to HTTP status codes; transport success is implicit and the
// decision travels in the body.
package server
