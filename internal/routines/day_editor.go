package routines

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xqfit/routines/internal/fitapi"
	"github.com/xqfit/routines/internal/telemetry/metrics"
	"github.com/xqfit/routines/internal/telemetry/tracing"
)

// DayInput is one submission of the workout day editor. Identifiers and the
// day number arrive as raw strings (route params, text fields) and are
// coerced to ints before anything is sent over the wire. DesiredSets maps
// muscle group id to the desired set count as typed; "" and "0" both mean
// "not selected".
type DayInput struct {
	RoutineID    string
	WorkoutDayID string // empty or "0" creates a new day
	DayNumber    string
	DayName      string
	Notes        string
	DesiredSets  map[int]string
}

type SetAction string

const (
	SetActionCreate SetAction = "create"
	SetActionUpdate SetAction = "update"
	SetActionDelete SetAction = "delete"
)

// SetOp is one planned mutation of a workout day's set rows.
type SetOp struct {
	Action        SetAction
	MuscleGroupID int
	NumberOfSets  int // zero for deletes
	SetID         int // existing row id, deletes only
}

// Plan is the reconciliation of desired set counts against the existing
// rows. Every muscle group involved lands in exactly one bucket.
type Plan struct {
	CreateDay bool
	Deletes   []SetOp
	Updates   []SetOp
	Creates   []SetOp
}

func (p Plan) opsTotal() int {
	return len(p.Deletes) + len(p.Updates) + len(p.Creates)
}

// Result reports what Apply did. When Apply returns an error, AppliedOps
// tells how far through the plan it got; already-applied mutations are not
// rolled back.
type Result struct {
	WorkoutDay *fitapi.WorkoutDay
	Plan       Plan
	AppliedOps int
	TotalOps   int
}

// DayEditor reconciles an edited workout day against the write service:
// upsert the day itself first, then delete, update and create set rows to
// match the desired counts.
type DayEditor struct {
	api     dayWriteAPI
	metrics *metrics.Manager
}

func NewDayEditor(api dayWriteAPI, metricsManager *metrics.Manager) *DayEditor {
	return &DayEditor{
		api:     api,
		metrics: metricsManager,
	}
}

// Apply validates the input, plans the reconciliation against existingSets
// and applies it sequentially. The first failed call aborts the remainder
// and is returned together with the partial result.
func (e *DayEditor) Apply(ctx context.Context, input DayInput, existingSets []fitapi.WorkoutDaySet) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.dayEditor.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	coerced, err := coerceDayInput(input)
	if err != nil {
		return nil, err
	}

	plan := planSetOps(coerced, existingSets)
	result := &Result{
		Plan:     plan,
		TotalOps: plan.opsTotal(),
	}

	// day upsert comes first: creates need the day id resolved before any
	// set row can be written
	day, err := e.upsertDay(ctx, coerced)
	if err != nil {
		return result, err
	}
	result.WorkoutDay = day

	for _, op := range plan.Deletes {
		if err := e.api.DeleteWorkoutDaySet(ctx, op.SetID); err != nil {
			return result, err
		}
		e.countOp(op.Action)
		result.AppliedOps++
	}

	for _, op := range plan.Updates {
		if _, err := e.api.UpdateWorkoutDaySetByKey(ctx, day.ID, op.MuscleGroupID, fitapi.UpdateWorkoutDaySetParams{
			NumberOfSets: op.NumberOfSets,
		}); err != nil {
			return result, err
		}
		e.countOp(op.Action)
		result.AppliedOps++
	}

	for _, op := range plan.Creates {
		if _, err := e.api.CreateWorkoutDaySet(ctx, fitapi.CreateWorkoutDaySetParams{
			WorkoutDayID:  day.ID,
			MuscleGroupID: op.MuscleGroupID,
			NumberOfSets:  op.NumberOfSets,
		}); err != nil {
			return result, err
		}
		e.countOp(op.Action)
		result.AppliedOps++
	}

	return result, nil
}

func (e *DayEditor) upsertDay(ctx context.Context, input coercedDayInput) (*fitapi.WorkoutDay, error) {
	if input.workoutDayID == 0 {
		return e.api.CreateWorkoutDay(ctx, fitapi.CreateWorkoutDayParams{
			RoutineID: input.routineID,
			DayNumber: input.dayNumber,
			DayName:   input.dayName,
			Notes:     input.notes,
		})
	}
	return e.api.UpdateWorkoutDay(ctx, input.workoutDayID, fitapi.UpdateWorkoutDayParams{
		DayNumber: input.dayNumber,
		DayName:   input.dayName,
		Notes:     input.notes,
	})
}

func (e *DayEditor) countOp(action SetAction) {
	if e.metrics == nil {
		return
	}
	e.metrics.CounterReconciliationOps.WithLabelValues(string(action)).Inc()
}

type coercedDayInput struct {
	routineID    int
	workoutDayID int // zero means create
	dayNumber    int
	dayName      string
	notes        *string
	desiredSets  map[int]int // selected muscle groups only, count >= 1
}

// coerceDayInput parses and validates in a fixed order; the first failure
// wins and no later checks run.
func coerceDayInput(input DayInput) (coercedDayInput, error) {
	var coerced coercedDayInput

	dayNumber, err := strconv.Atoi(strings.TrimSpace(input.DayNumber))
	if err != nil || dayNumber < 1 {
		return coerced, errors.New("Please enter a valid day number (1 or greater)")
	}

	dayName := strings.TrimSpace(input.DayName)
	if dayName == "" {
		return coerced, errors.New("Please enter a day name")
	}

	selected := map[int]string{}
	for muscleGroupID, rawCount := range input.DesiredSets {
		rawCount = strings.TrimSpace(rawCount)
		if rawCount == "" || rawCount == "0" {
			continue
		}
		selected[muscleGroupID] = rawCount
	}
	if len(selected) == 0 {
		return coerced, errors.New("Please select at least one muscle group and number of sets")
	}

	desiredSets := map[int]int{}
	for muscleGroupID, rawCount := range selected {
		count, err := strconv.Atoi(rawCount)
		if err != nil || count < 1 {
			return coerced, errors.New("All selected muscle groups must have at least 1 set")
		}
		desiredSets[muscleGroupID] = count
	}

	// route params, not user input: a parse failure here is a caller bug
	routineID, err := strconv.Atoi(strings.TrimSpace(input.RoutineID))
	if err != nil {
		return coerced, fmt.Errorf("invalid routine id %q: %w", input.RoutineID, err)
	}

	workoutDayID := 0
	if rawID := strings.TrimSpace(input.WorkoutDayID); rawID != "" && rawID != "0" {
		workoutDayID, err = strconv.Atoi(rawID)
		if err != nil {
			return coerced, fmt.Errorf("invalid workout day id %q: %w", input.WorkoutDayID, err)
		}
	}

	coerced = coercedDayInput{
		routineID:    routineID,
		workoutDayID: workoutDayID,
		dayNumber:    dayNumber,
		dayName:      dayName,
		notes:        optionalText(input.Notes),
		desiredSets:  desiredSets,
	}
	return coerced, nil
}

// planSetOps partitions the muscle groups: desired without an existing row
// become creates, desired with one become updates, existing rows no longer
// desired become deletes. Buckets are ordered by muscle group id so the
// apply sequence is deterministic.
func planSetOps(input coercedDayInput, existingSets []fitapi.WorkoutDaySet) Plan {
	existingByMuscleGroup := map[int]fitapi.WorkoutDaySet{}
	for _, set := range existingSets {
		existingByMuscleGroup[set.MuscleGroupID] = set
	}

	plan := Plan{CreateDay: input.workoutDayID == 0}

	for muscleGroupID, count := range input.desiredSets {
		if _, ok := existingByMuscleGroup[muscleGroupID]; ok {
			plan.Updates = append(plan.Updates, SetOp{
				Action:        SetActionUpdate,
				MuscleGroupID: muscleGroupID,
				NumberOfSets:  count,
			})
		} else {
			plan.Creates = append(plan.Creates, SetOp{
				Action:        SetActionCreate,
				MuscleGroupID: muscleGroupID,
				NumberOfSets:  count,
			})
		}
	}

	for muscleGroupID, set := range existingByMuscleGroup {
		if _, stillDesired := input.desiredSets[muscleGroupID]; !stillDesired {
			plan.Deletes = append(plan.Deletes, SetOp{
				Action:        SetActionDelete,
				MuscleGroupID: muscleGroupID,
				SetID:         set.ID,
			})
		}
	}

	sortOps(plan.Deletes)
	sortOps(plan.Updates)
	sortOps(plan.Creates)
	return plan
}

func sortOps(ops []SetOp) {
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].MuscleGroupID < ops[j].MuscleGroupID
	})
}
