package routines

import (
	"errors"
	"strconv"
	"strings"

	"github.com/xqfit/routines/internal/fitapi"
)

// ExerciseForm holds raw text input for an exercise entry. Build validates
// and converts it into wire fields; a Build error means nothing should be
// sent to the write service.
type ExerciseForm struct {
	Name      string
	TotalReps string
	Weight    string
	TotalSets string
	Notes     string
}

func (f ExerciseForm) Build() (fitapi.ExerciseFields, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return fitapi.ExerciseFields{}, errors.New("Exercise name is required")
	}

	totalReps, err := parseNonNegativeInt(f.TotalReps)
	if err != nil {
		return fitapi.ExerciseFields{}, errors.New("Total reps must be 0 or greater")
	}

	weight, err := parseNonNegativeFloat(f.Weight)
	if err != nil {
		return fitapi.ExerciseFields{}, errors.New("Weight must be 0 or greater")
	}

	totalSets, err := parseNonNegativeInt(f.TotalSets)
	if err != nil {
		return fitapi.ExerciseFields{}, errors.New("Total sets must be 0 or greater")
	}

	return fitapi.ExerciseFields{
		ExerciseName: name,
		TotalReps:    totalReps,
		Weight:       weight,
		TotalSets:    totalSets,
		Notes:        optionalText(f.Notes),
	}, nil
}

// RoutineForm holds raw text input for creating or renaming a routine.
type RoutineForm struct {
	Name        string
	Description string
	IsActive    bool
}

func (f RoutineForm) Build() (fitapi.CreateRoutineParams, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return fitapi.CreateRoutineParams{}, errors.New("Please enter a routine name")
	}

	return fitapi.CreateRoutineParams{
		Name:        name,
		Description: optionalText(f.Description),
		IsActive:    f.IsActive,
	}, nil
}

// parseNonNegativeInt treats blank input as zero.
func parseNonNegativeInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, errors.New("negative")
	}
	return value, nil
}

func parseNonNegativeFloat(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, errors.New("negative")
	}
	return value, nil
}

// optionalText trims the input and maps empty to nil, matching the
// services' nullable text columns.
func optionalText(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
