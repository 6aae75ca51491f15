package fitapi

import "time"

// Wire model of the xq-fitness read/write services. Field names follow the
// services' JSON contract; WeekStartDate is an ISO date (no time part), so it
// stays a plain string.

type MuscleGroup struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Routine struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	WorkoutDays []WorkoutDay `json:"workoutDays,omitempty"`
}

type WorkoutDay struct {
	ID        int             `json:"id"`
	RoutineID int             `json:"routineId"`
	DayNumber int             `json:"dayNumber"`
	DayName   string          `json:"dayName"`
	Notes     *string         `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Sets      []WorkoutDaySet `json:"sets,omitempty"`
	Exercises []Exercise      `json:"exercises,omitempty"`
}

type WorkoutDaySet struct {
	ID            int         `json:"id"`
	WorkoutDayID  int         `json:"workoutDayId"`
	MuscleGroupID int         `json:"muscleGroupId"`
	NumberOfSets  int         `json:"numberOfSets"`
	MuscleGroup   MuscleGroup `json:"muscleGroup"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type Exercise struct {
	ID            int       `json:"id"`
	WorkoutDayID  int       `json:"workoutDayId"`
	MuscleGroupID int       `json:"muscleGroupId"`
	ExerciseName  string    `json:"exerciseName"`
	TotalReps     int       `json:"totalReps"`
	Weight        float64   `json:"weight"`
	TotalSets     int       `json:"totalSets"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type WeeklySnapshot struct {
	ID            int       `json:"id"`
	RoutineID     int       `json:"routineId"`
	WeekStartDate string    `json:"weekStartDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

type MuscleGroupTotal struct {
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	TotalSets   int         `json:"totalSets"`
}

type ExerciseTotal struct {
	ExerciseName string      `json:"exerciseName"`
	MuscleGroup  MuscleGroup `json:"muscleGroup"`
	TotalReps    int         `json:"totalReps"`
	TotalWeight  float64     `json:"totalWeight"`
	TotalSets    int         `json:"totalSets"`
}

type WeeklyReport struct {
	RoutineID         int                `json:"routineId"`
	WeekStartDate     string             `json:"weekStartDate"`
	HasSnapshot       bool               `json:"hasSnapshot"`
	SnapshotCreatedAt *time.Time         `json:"snapshotCreatedAt"`
	MuscleGroupTotals []MuscleGroupTotal `json:"muscleGroupTotals"`
	ExerciseTotals    []ExerciseTotal    `json:"exerciseTotals"`
}

// request payloads

type CreateRoutineParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
}

type UpdateRoutineParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
}

type CreateWorkoutDayParams struct {
	RoutineID int     `json:"routineId"`
	DayNumber int     `json:"dayNumber"`
	DayName   string  `json:"dayName"`
	Notes     *string `json:"notes"`
}

type UpdateWorkoutDayParams struct {
	DayNumber int     `json:"dayNumber"`
	DayName   string  `json:"dayName"`
	Notes     *string `json:"notes"`
}

type CreateWorkoutDaySetParams struct {
	WorkoutDayID  int `json:"workoutDayId"`
	MuscleGroupID int `json:"muscleGroupId"`
	NumberOfSets  int `json:"numberOfSets"`
}

type UpdateWorkoutDaySetParams struct {
	NumberOfSets int `json:"numberOfSets"`
}

type ExerciseFields struct {
	ExerciseName string  `json:"exerciseName"`
	TotalReps    int     `json:"totalReps"`
	Weight       float64 `json:"weight"`
	TotalSets    int     `json:"totalSets"`
	Notes        *string `json:"notes"`
}

type CreateExerciseParams struct {
	WorkoutDayID  int `json:"workoutDayId"`
	MuscleGroupID int `json:"muscleGroupId"`
	ExerciseFields
}

type UpdateExerciseParams struct {
	ExerciseFields
}
