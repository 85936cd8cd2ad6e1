// Package progress defines the caller-provided sink that a generation
// run reports its phase/percent/message events to.
package progress

import "github.com/icedraw/schedgen/internal/core/models"

// Sink receives progress events emitted during one generation run. A
// nil Sink is never passed to a stage; callers that don't care about
// progress use NoopSink.
type Sink interface {
	Emit(event models.ProgressEvent)
}

// NoopSink discards every event.
type NoopSink struct{}

// Emit does nothing.
func (NoopSink) Emit(models.ProgressEvent) {}
