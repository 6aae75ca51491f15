package fitapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xqfit/routines/internal/telemetry/tracing"
)

// CreateRoutine creates a routine and returns the stored record.
func (c *Client) CreateRoutine(ctx context.Context, params CreateRoutineParams) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.createRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine := &Routine{}
	url := fmt.Sprintf("%s/routines", c.writeBaseURL)
	if err := c.do(ctx, serviceWrite, "createRoutine", http.MethodPost, url, params, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

func (c *Client) UpdateRoutine(ctx context.Context, routineID int, params UpdateRoutineParams) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.updateRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine := &Routine{}
	url := fmt.Sprintf("%s/routines/%d", c.writeBaseURL, routineID)
	if err := c.do(ctx, serviceWrite, "updateRoutine", http.MethodPut, url, params, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

// DeleteRoutine removes the routine together with its workout days, their
// sets, their exercises and the routine's snapshots.
func (c *Client) DeleteRoutine(ctx context.Context, routineID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.deleteRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	url := fmt.Sprintf("%s/routines/%d", c.writeBaseURL, routineID)
	return c.do(ctx, serviceWrite, "deleteRoutine", http.MethodDelete, url, nil, nil)
}

func (c *Client) CreateWorkoutDay(ctx context.Context, params CreateWorkoutDayParams) (_ *WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.createWorkoutDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := &WorkoutDay{}
	url := fmt.Sprintf("%s/workout-days", c.writeBaseURL)
	if err := c.do(ctx, serviceWrite, "createWorkoutDay", http.MethodPost, url, params, day); err != nil {
		return nil, err
	}
	return day, nil
}

func (c *Client) UpdateWorkoutDay(ctx context.Context, workoutDayID int, params UpdateWorkoutDayParams) (_ *WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.updateWorkoutDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := &WorkoutDay{}
	url := fmt.Sprintf("%s/workout-days/%d", c.writeBaseURL, workoutDayID)
	if err := c.do(ctx, serviceWrite, "updateWorkoutDay", http.MethodPut, url, params, day); err != nil {
		return nil, err
	}
	return day, nil
}

// DeleteWorkoutDay removes the day and cascades to its sets and exercises.
func (c *Client) DeleteWorkoutDay(ctx context.Context, workoutDayID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.deleteWorkoutDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	url := fmt.Sprintf("%s/workout-days/%d", c.writeBaseURL, workoutDayID)
	return c.do(ctx, serviceWrite, "deleteWorkoutDay", http.MethodDelete, url, nil, nil)
}

func (c *Client) CreateWorkoutDaySet(ctx context.Context, params CreateWorkoutDaySetParams) (_ *WorkoutDaySet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.createWorkoutDaySet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	set := &WorkoutDaySet{}
	url := fmt.Sprintf("%s/workout-day-sets", c.writeBaseURL)
	if err := c.do(ctx, serviceWrite, "createWorkoutDaySet", http.MethodPost, url, params, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (c *Client) UpdateWorkoutDaySet(ctx context.Context, setID int, params UpdateWorkoutDaySetParams) (_ *WorkoutDaySet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.updateWorkoutDaySet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	set := &WorkoutDaySet{}
	url := fmt.Sprintf("%s/workout-day-sets/%d", c.writeBaseURL, setID)
	if err := c.do(ctx, serviceWrite, "updateWorkoutDaySet", http.MethodPut, url, params, set); err != nil {
		return nil, err
	}
	return set, nil
}

// UpdateWorkoutDaySetByKey updates a set addressed by its natural key
// (workout day + muscle group) instead of the row id. The path id is a
// placeholder zero; the write service resolves the row from the query
// parameters.
func (c *Client) UpdateWorkoutDaySetByKey(
	ctx context.Context,
	workoutDayID, muscleGroupID int,
	params UpdateWorkoutDaySetParams,
) (_ *WorkoutDaySet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.updateWorkoutDaySetByKey")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	set := &WorkoutDaySet{}
	url := fmt.Sprintf(
		"%s/workout-day-sets/0?workoutDayId=%d&muscleGroupId=%d",
		c.writeBaseURL, workoutDayID, muscleGroupID,
	)
	if err := c.do(ctx, serviceWrite, "updateWorkoutDaySetByKey", http.MethodPut, url, params, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (c *Client) DeleteWorkoutDaySet(ctx context.Context, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.deleteWorkoutDaySet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	url := fmt.Sprintf("%s/workout-day-sets/%d", c.writeBaseURL, setID)
	return c.do(ctx, serviceWrite, "deleteWorkoutDaySet", http.MethodDelete, url, nil, nil)
}

func (c *Client) CreateExercise(ctx context.Context, params CreateExerciseParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.createExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise := &Exercise{}
	url := fmt.Sprintf("%s/exercises", c.writeBaseURL)
	if err := c.do(ctx, serviceWrite, "createExercise", http.MethodPost, url, params, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (c *Client) UpdateExercise(ctx context.Context, exerciseID int, params UpdateExerciseParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.updateExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise := &Exercise{}
	url := fmt.Sprintf("%s/exercises/%d", c.writeBaseURL, exerciseID)
	if err := c.do(ctx, serviceWrite, "updateExercise", http.MethodPut, url, params, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (c *Client) DeleteExercise(ctx context.Context, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.deleteExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	url := fmt.Sprintf("%s/exercises/%d", c.writeBaseURL, exerciseID)
	return c.do(ctx, serviceWrite, "deleteExercise", http.MethodDelete, url, nil, nil)
}

// CreateWeeklySnapshot captures the routine's current structure for its
// current week. Re-snapshotting the same week replaces the previous capture.
func (c *Client) CreateWeeklySnapshot(ctx context.Context, routineID int) (_ *WeeklySnapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.createWeeklySnapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshot := &WeeklySnapshot{}
	url := fmt.Sprintf("%s/routines/%d/snapshots", c.writeBaseURL, routineID)
	if err := c.do(ctx, serviceWrite, "createWeeklySnapshot", http.MethodPost, url, nil, snapshot); err != nil {
		return nil, err
	}

	if c.metrics != nil {
		c.metrics.CounterSnapshotsCreated.Inc()
	}
	return snapshot, nil
}
