package mockapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/xqfit/routines/internal/fitapi"
	"github.com/xqfit/routines/internal/routines"
	"github.com/xqfit/routines/internal/telemetry/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testReadService  = "xq-fitness-read-service"
	testWriteService = "xq-fitness-write-service"
)

// newTestClient spins the combined mock gateway up and points a real api
// client at it, the same wiring the cmd binary uses.
func newTestClient(t *testing.T) *fitapi.Client {
	t.Helper()

	server := NewServer(NewStore(), metrics.NewTestManager())
	testServer := httptest.NewServer(server.CombinedHandler(testReadService, testWriteService))
	t.Cleanup(testServer.Close)

	return fitapi.NewClient(
		testServer.URL+"/"+testReadService+"/api/v1",
		testServer.URL+"/"+testWriteService+"/api/v1",
		testServer.Client(),
		metrics.NewTestManager(),
	)
}

func TestServer_MuscleGroupsSeeded(t *testing.T) {
	client := newTestClient(t)

	muscleGroups, err := client.GetMuscleGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, muscleGroups, 6)
	assert.Equal(t, "Chest", muscleGroups[0].Name)
	assert.Equal(t, "Core", muscleGroups[5].Name)
}

func TestServer_RoutineNotFound(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetRoutine(context.Background(), 12345)
	require.Error(t, err)
	assert.True(t, fitapi.IsNotFound(err))
	assert.Equal(t, "Routine not found", fitapi.ErrorMessage(err))
}

func TestServer_ValidationErrorShape(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CreateRoutine(context.Background(), fitapi.CreateRoutineParams{Name: ""})
	require.Error(t, err)
	assert.True(t, fitapi.IsValidation(err))
	assert.Equal(t, "Routine name is required", fitapi.ErrorMessage(err))
}

// The whole flow the app runs in a week: build a routine through the
// write service, snapshot it, read the aggregated report back.
func TestServer_CreateSnapshotReport_EndToEnd(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	routine, err := client.CreateRoutine(ctx, fitapi.CreateRoutineParams{
		Name:     "Push Pull Legs",
		IsActive: true,
	})
	require.NoError(t, err)
	require.NotZero(t, routine.ID)

	// the editor takes route params as strings, the way they come off a route
	editor := routines.NewDayEditor(client, metrics.NewTestManager())
	result, err := editor.Apply(ctx, routines.DayInput{
		RoutineID:   intToString(routine.ID),
		DayNumber:   "1",
		DayName:     "Push",
		DesiredSets: map[int]string{1: "4", 4: "3"},
	}, nil)
	require.NoError(t, err)
	day := result.WorkoutDay
	require.NotNil(t, day)

	_, err = client.CreateExercise(ctx, fitapi.CreateExerciseParams{
		WorkoutDayID:  day.ID,
		MuscleGroupID: 1,
		ExerciseFields: fitapi.ExerciseFields{
			ExerciseName: "Bench Press", TotalReps: 30, Weight: 80, TotalSets: 3,
		},
	})
	require.NoError(t, err)
	_, err = client.CreateExercise(ctx, fitapi.CreateExerciseParams{
		WorkoutDayID:  day.ID,
		MuscleGroupID: 1,
		ExerciseFields: fitapi.ExerciseFields{
			ExerciseName: "Bench Press", TotalReps: 25, Weight: 85, TotalSets: 3,
		},
	})
	require.NoError(t, err)

	orchestrator := routines.NewSnapshotOrchestrator(client)
	snapshot, err := orchestrator.Create(ctx, routine.ID)
	require.NoError(t, err)
	assert.Equal(t, routine.ID, snapshot.RoutineID)
	assert.Equal(t, routines.WeekStartDate(time.Now()), snapshot.WeekStartDate)

	reader := routines.NewReportReader(client)
	report, err := reader.Get(ctx, routine.ID)
	require.NoError(t, err)
	require.True(t, report.HasSnapshot)

	require.Len(t, report.MuscleGroupTotals, 2)
	assert.Equal(t, "Chest", report.MuscleGroupTotals[0].MuscleGroup.Name)
	assert.Equal(t, 4, report.MuscleGroupTotals[0].TotalSets)
	assert.Equal(t, "Shoulders", report.MuscleGroupTotals[1].MuscleGroup.Name)
	assert.Equal(t, 3, report.MuscleGroupTotals[1].TotalSets)

	require.Len(t, report.ExerciseTotals, 1)
	assert.Equal(t, "Bench Press", report.ExerciseTotals[0].ExerciseName)
	assert.Equal(t, 55, report.ExerciseTotals[0].TotalReps)
	assert.Equal(t, 6, report.ExerciseTotals[0].TotalSets)
	assert.Equal(t, float64(85), report.ExerciseTotals[0].TotalWeight)
}

func TestServer_ReconcileExistingDay_EndToEnd(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	routine, err := client.CreateRoutine(ctx, fitapi.CreateRoutineParams{Name: "Upper Lower", IsActive: true})
	require.NoError(t, err)

	day, err := client.CreateWorkoutDay(ctx, fitapi.CreateWorkoutDayParams{
		RoutineID: routine.ID, DayNumber: 1, DayName: "Upper",
	})
	require.NoError(t, err)

	_, err = client.CreateWorkoutDaySet(ctx, fitapi.CreateWorkoutDaySetParams{
		WorkoutDayID: day.ID, MuscleGroupID: 1, NumberOfSets: 4,
	})
	require.NoError(t, err)
	_, err = client.CreateWorkoutDaySet(ctx, fitapi.CreateWorkoutDaySetParams{
		WorkoutDayID: day.ID, MuscleGroupID: 2, NumberOfSets: 3,
	})
	require.NoError(t, err)

	loaded, err := client.GetRoutine(ctx, routine.ID)
	require.NoError(t, err)
	require.Len(t, loaded.WorkoutDays, 1)
	existingSets := loaded.WorkoutDays[0].Sets

	// keep chest with a new count, drop back, add shoulders
	editor := routines.NewDayEditor(client, metrics.NewTestManager())
	result, err := editor.Apply(ctx, routines.DayInput{
		RoutineID:    intToString(routine.ID),
		WorkoutDayID: intToString(day.ID),
		DayNumber:    "1",
		DayName:      "Upper A",
		DesiredSets:  map[int]string{1: "6", 2: "0", 4: "2"},
	}, existingSets)
	require.NoError(t, err)
	assert.Equal(t, 3, result.AppliedOps)

	reloaded, err := client.GetRoutine(ctx, routine.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.WorkoutDays, 1)
	assert.Equal(t, "Upper A", reloaded.WorkoutDays[0].DayName)

	sets := reloaded.WorkoutDays[0].Sets
	require.Len(t, sets, 2)
	setsByGroup := map[int]int{}
	for _, set := range sets {
		setsByGroup[set.MuscleGroupID] = set.NumberOfSets
	}
	assert.Equal(t, map[int]int{1: 6, 4: 2}, setsByGroup)
}

// The read and write services can also run split, each under its own
// /api/v1, the way the real deployment separates them.
func TestServer_SplitReadWriteHandlers(t *testing.T) {
	ctx := context.Background()
	server := NewServer(NewStore(), metrics.NewTestManager())

	readServer := httptest.NewServer(server.ReadHandler())
	t.Cleanup(readServer.Close)
	writeServer := httptest.NewServer(server.WriteHandler())
	t.Cleanup(writeServer.Close)

	client := fitapi.NewClient(
		readServer.URL+"/api/v1",
		writeServer.URL+"/api/v1",
		fitapi.NewDefaultHTTPClient(),
		metrics.NewTestManager(),
	)

	routine, err := client.CreateRoutine(ctx, fitapi.CreateRoutineParams{Name: "Full Body", IsActive: true})
	require.NoError(t, err)

	// writes land in the same store the read side serves
	loaded, err := client.GetRoutine(ctx, routine.ID)
	require.NoError(t, err)
	assert.Equal(t, "Full Body", loaded.Name)

	// read routes are absent from the write service and vice versa
	resp, err := testServerGet(writeServer.URL + "/api/v1/muscle-groups")
	require.NoError(t, err)
	assert.Equal(t, 404, resp)
}

func testServerGet(url string) (int, error) {
	resp, err := http.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func TestServer_GetWorkoutDayExercises(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	routine, err := client.CreateRoutine(ctx, fitapi.CreateRoutineParams{Name: "PPL", IsActive: true})
	require.NoError(t, err)
	day, err := client.CreateWorkoutDay(ctx, fitapi.CreateWorkoutDayParams{
		RoutineID: routine.ID, DayNumber: 1, DayName: "Push",
	})
	require.NoError(t, err)

	exercise, err := client.CreateExercise(ctx, fitapi.CreateExerciseParams{
		WorkoutDayID:  day.ID,
		MuscleGroupID: 1,
		ExerciseFields: fitapi.ExerciseFields{
			ExerciseName: "Incline Press", TotalReps: 20, Weight: 60, TotalSets: 2,
		},
	})
	require.NoError(t, err)

	exercises, err := client.GetWorkoutDayExercises(ctx, day.ID)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, exercise.ID, exercises[0].ID)

	// update and delete round out the exercise lifecycle
	updated, err := client.UpdateExercise(ctx, exercise.ID, fitapi.UpdateExerciseParams{
		ExerciseFields: fitapi.ExerciseFields{
			ExerciseName: "Incline Press", TotalReps: 22, Weight: 62.5, TotalSets: 2,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 22, updated.TotalReps)

	require.NoError(t, client.DeleteExercise(ctx, exercise.ID))
	exercises, err = client.GetWorkoutDayExercises(ctx, day.ID)
	require.NoError(t, err)
	assert.Empty(t, exercises)
}

func intToString(id int) string {
	return strconv.Itoa(id)
}
