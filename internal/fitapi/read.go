package fitapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xqfit/routines/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

var muscleGroupsCacheKey = []byte("muscle-groups")

// GetMuscleGroups returns the full muscle group reference list. The list is
// a static lookup table, so it is served from an in-process cache after the
// first fetch.
func (c *Client) GetMuscleGroups(ctx context.Context) (_ []MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.getMuscleGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cachedBytes, err := c.cache.Get(muscleGroupsCacheKey); err == nil {
		var muscleGroups []MuscleGroup
		if err = json.Unmarshal(cachedBytes, &muscleGroups); err == nil {
			log.Tracef("muscle groups served from cache: %d", len(muscleGroups))
			return muscleGroups, nil
		}
		log.Errorf("failed to unmarshal cached muscle groups: %s", err)
	}

	var muscleGroups []MuscleGroup
	url := fmt.Sprintf("%s/muscle-groups", c.readBaseURL)
	if err := c.do(ctx, serviceRead, "getMuscleGroups", http.MethodGet, url, nil, &muscleGroups); err != nil {
		return nil, err
	}

	if mgBytes, err := json.Marshal(muscleGroups); err == nil {
		if err := c.cache.Set(muscleGroupsCacheKey, mgBytes, muscleGroupsCacheExpire); err != nil {
			log.Errorf("failed to cache muscle groups: %s", err)
		}
	}

	return muscleGroups, nil
}

// GetRoutines lists routine summaries (no nested days). Pass isActive to
// filter, nil for all.
func (c *Client) GetRoutines(ctx context.Context, isActive *bool) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.getRoutines")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	url := fmt.Sprintf("%s/routines", c.readBaseURL)
	if isActive != nil {
		url = fmt.Sprintf("%s?isActive=%t", url, *isActive)
	}

	var routines []Routine
	if err := c.do(ctx, serviceRead, "getRoutines", http.MethodGet, url, nil, &routines); err != nil {
		return nil, err
	}
	return routines, nil
}

// GetRoutine fetches one routine with its nested workout days, each with
// sets (muscle group embedded) and exercises. Absent id yields a
// not-found-kind error.
func (c *Client) GetRoutine(ctx context.Context, routineID int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.getRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine := &Routine{}
	url := fmt.Sprintf("%s/routines/%d", c.readBaseURL, routineID)
	if err := c.do(ctx, serviceRead, "getRoutine", http.MethodGet, url, nil, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

// GetWorkoutDayExercises lists the exercises logged for one workout day.
func (c *Client) GetWorkoutDayExercises(ctx context.Context, workoutDayID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.getWorkoutDayExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exercises []Exercise
	url := fmt.Sprintf("%s/workout-days/%d/exercises", c.readBaseURL, workoutDayID)
	if err := c.do(ctx, serviceRead, "getWorkoutDayExercises", http.MethodGet, url, nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// GetWeeklyReport fetches the aggregated report for the routine's current
// ISO week. The report reflects the latest snapshot only; live routine
// mutations after the snapshot do not show up here.
func (c *Client) GetWeeklyReport(ctx context.Context, routineID int) (_ *WeeklyReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi.getWeeklyReport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	report := &WeeklyReport{}
	url := fmt.Sprintf("%s/routines/%d/weekly-report", c.readBaseURL, routineID)
	if err := c.do(ctx, serviceRead, "getWeeklyReport", http.MethodGet, url, nil, report); err != nil {
		return nil, err
	}
	return report, nil
}
