package routines

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/xqfit/routines/internal/fitapi"
	"github.com/xqfit/routines/internal/telemetry/tracing"
)

// ErrSnapshotInFlight is returned when a snapshot request for this
// orchestrator is already running; no second request is issued.
var ErrSnapshotInFlight = errors.New("snapshot request already in flight")

// SnapshotOrchestrator serializes weekly snapshot creation. The services
// tolerate duplicate snapshots (same week replaces), but firing two at once
// from a double tap is wasted work, so calls overlap-guard per instance.
type SnapshotOrchestrator struct {
	api snapshotAPI

	mutex   sync.Mutex
	pending bool
}

func NewSnapshotOrchestrator(api snapshotAPI) *SnapshotOrchestrator {
	return &SnapshotOrchestrator{
		api: api,
	}
}

// InFlight reports whether a snapshot request is currently running.
func (o *SnapshotOrchestrator) InFlight() bool {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	return o.pending
}

// Create captures the routine's current structure for this week. A 404
// passes through untouched so callers can show the server's message; other
// failures are wrapped.
func (o *SnapshotOrchestrator) Create(ctx context.Context, routineID int) (_ *fitapi.WeeklySnapshot, err error) {
	o.mutex.Lock()
	if o.pending {
		o.mutex.Unlock()
		return nil, ErrSnapshotInFlight
	}
	o.pending = true
	o.mutex.Unlock()

	defer func() {
		o.mutex.Lock()
		o.pending = false
		o.mutex.Unlock()
	}()

	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.snapshot.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshot, err := o.api.CreateWeeklySnapshot(ctx, routineID)
	if err != nil {
		if fitapi.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create weekly snapshot: %w", err)
	}

	return snapshot, nil
}
