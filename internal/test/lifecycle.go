package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks so tests can drive OnStart and OnStop
// directly instead of spinning up a full fx app.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for the test to invoke.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub records shutdown invocations.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies tests about graceful termination.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
