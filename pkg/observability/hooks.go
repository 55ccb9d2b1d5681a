// Package observability provides hooks for metrics and tracing around
// the layout engine.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about plan builds and edits.
//
// The package uses a simple hooks pattern: hook interfaces with no-op
// default implementations, registered by main rather than by
// libraries, so the core stays free of observability frameworks and
// any backend (OpenTelemetry, Prometheus, DataDog, …) can be plugged
// in.
//
// # Usage
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// EngineHooks receives events from the layout pipeline and edit
// operations.
type EngineHooks interface {
	// OnBuildStart records the beginning of a plan build.
	OnBuildStart(name string, roomCount int)

	// OnBuildComplete records a finished build with its output sizes.
	OnBuildComplete(name string, roomCount, wallCount int, duration time.Duration)

	// OnEditApplied records an edit operation against a plan.
	OnEditApplied(op, planID, roomID string)
}

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnBuildStart(string, int)                        {}
func (NoopEngineHooks) OnBuildComplete(string, int, int, time.Duration) {}
func (NoopEngineHooks) OnEditApplied(string, string, string)            {}

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks. This should be called
// once at application startup before any builds run.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Reset restores the no-op default. Primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
}
