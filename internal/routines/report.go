package routines

import (
	"context"
	"fmt"

	"github.com/xqfit/routines/internal/fitapi"
	"github.com/xqfit/routines/internal/telemetry/tracing"
)

// ReportReader fetches weekly reports. A report only ever reflects the
// latest snapshot of the current week; edits made after snapshotting are
// invisible until the next snapshot.
type ReportReader struct {
	api reportAPI
}

func NewReportReader(api reportAPI) *ReportReader {
	return &ReportReader{
		api: api,
	}
}

// Get returns the routine's current-week report. A 404 passes through
// untouched (callers render the empty state from it); other failures are
// wrapped as transient.
func (r *ReportReader) Get(ctx context.Context, routineID int) (_ *fitapi.WeeklyReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.report.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	report, err := r.api.GetWeeklyReport(ctx, routineID)
	if err != nil {
		if fitapi.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get weekly report: %w", err)
	}

	return report, nil
}
