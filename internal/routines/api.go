package routines

import (
	"context"

	"github.com/xqfit/routines/internal/fitapi"
)

//go:generate mockgen -source=$GOFILE -destination=api_mocks_test.go -package=routines_test

// dayWriteAPI is the slice of the fitness client the day editor needs.
type dayWriteAPI interface {
	CreateWorkoutDay(ctx context.Context, params fitapi.CreateWorkoutDayParams) (*fitapi.WorkoutDay, error)
	UpdateWorkoutDay(ctx context.Context, workoutDayID int, params fitapi.UpdateWorkoutDayParams) (*fitapi.WorkoutDay, error)
	CreateWorkoutDaySet(ctx context.Context, params fitapi.CreateWorkoutDaySetParams) (*fitapi.WorkoutDaySet, error)
	UpdateWorkoutDaySetByKey(ctx context.Context, workoutDayID, muscleGroupID int, params fitapi.UpdateWorkoutDaySetParams) (*fitapi.WorkoutDaySet, error)
	DeleteWorkoutDaySet(ctx context.Context, setID int) error
}

type snapshotAPI interface {
	CreateWeeklySnapshot(ctx context.Context, routineID int) (*fitapi.WeeklySnapshot, error)
}

type reportAPI interface {
	GetWeeklyReport(ctx context.Context, routineID int) (*fitapi.WeeklyReport, error)
}
