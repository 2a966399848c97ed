// Package monitoring collects Prometheus metrics for the protocol gate:
// decision counters by scheme and outcome, denial counters by internal
// reason, and broker request durations. Reason labels stay inside the
// process; the external response never carries them.
package monitoring
