package mockapi

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xqfit/routines/internal/fitapi"
	"github.com/xqfit/routines/internal/routines"
)

// NotFoundError maps to a 404 with the services' {"message"} body.
type NotFoundError struct {
	What string
}

func (e NotFoundError) Error() string {
	return e.What + " not found"
}

// ValidationError maps to a 400 with the services' {"message"} body.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

type snapshotKey struct {
	routineID int
	weekStart string
}

// weeklySnapshot holds the snapshot row plus a deep copy of the routine
// graph as it looked at capture time. Reports are computed from this copy
// only, never from the live rows.
type weeklySnapshot struct {
	meta fitapi.WeeklySnapshot
	days []fitapi.WorkoutDay
}

// Store is the in-memory backend shared by the mock read and write
// services. One Store per test, no cross-test state.
type Store struct {
	mutex sync.RWMutex
	now   func() time.Time

	nextID int

	muscleGroups map[int]fitapi.MuscleGroup
	routines     map[int]fitapi.Routine
	workoutDays  map[int]fitapi.WorkoutDay
	sets         map[int]fitapi.WorkoutDaySet
	exercises    map[int]fitapi.Exercise
	snapshots    map[snapshotKey]weeklySnapshot
}

var seededMuscleGroups = []string{"Chest", "Back", "Legs", "Shoulders", "Arms", "Core"}

func NewStore() *Store {
	return NewStoreWithNow(time.Now)
}

// NewStoreWithNow takes the clock so tests can pin the snapshot week.
func NewStoreWithNow(now func() time.Time) *Store {
	s := &Store{
		now:          now,
		muscleGroups: map[int]fitapi.MuscleGroup{},
		routines:     map[int]fitapi.Routine{},
		workoutDays:  map[int]fitapi.WorkoutDay{},
		sets:         map[int]fitapi.WorkoutDaySet{},
		exercises:    map[int]fitapi.Exercise{},
		snapshots:    map[snapshotKey]weeklySnapshot{},
	}
	for _, name := range seededMuscleGroups {
		id := s.newID()
		s.muscleGroups[id] = fitapi.MuscleGroup{
			ID:          id,
			Name:        name,
			Description: name + " muscles",
			CreatedAt:   s.now().UTC(),
		}
	}
	return s
}

func (s *Store) newID() int {
	s.nextID++
	return s.nextID
}

func (s *Store) ListMuscleGroups() []fitapi.MuscleGroup {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	muscleGroups := make([]fitapi.MuscleGroup, 0, len(s.muscleGroups))
	for _, mg := range s.muscleGroups {
		muscleGroups = append(muscleGroups, mg)
	}
	sort.Slice(muscleGroups, func(i, j int) bool {
		return muscleGroups[i].ID < muscleGroups[j].ID
	})
	return muscleGroups
}

func (s *Store) CreateRoutine(params fitapi.CreateRoutineParams) (fitapi.Routine, error) {
	if strings.TrimSpace(params.Name) == "" {
		return fitapi.Routine{}, ValidationError{Message: "Routine name is required"}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now().UTC()
	routine := fitapi.Routine{
		ID:          s.newID(),
		Name:        params.Name,
		Description: params.Description,
		IsActive:    params.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.routines[routine.ID] = routine
	return routine, nil
}

func (s *Store) ListRoutines(isActive *bool) []fitapi.Routine {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	list := make([]fitapi.Routine, 0, len(s.routines))
	for _, routine := range s.routines {
		if isActive != nil && routine.IsActive != *isActive {
			continue
		}
		list = append(list, routine)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// GetRoutine returns the routine with its full graph: days ordered by day
// number, each with its set rows (muscle group embedded) and exercises.
func (s *Store) GetRoutine(routineID int) (fitapi.Routine, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	routine, ok := s.routines[routineID]
	if !ok {
		return fitapi.Routine{}, NotFoundError{What: "Routine"}
	}

	routine.WorkoutDays = s.routineDaysLocked(routineID)
	return routine, nil
}

// routineDaysLocked assembles the nested day graph; callers hold the lock.
func (s *Store) routineDaysLocked(routineID int) []fitapi.WorkoutDay {
	var days []fitapi.WorkoutDay
	for _, day := range s.workoutDays {
		if day.RoutineID != routineID {
			continue
		}
		day.Sets = s.daySetsLocked(day.ID)
		day.Exercises = s.dayExercisesLocked(day.ID)
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].DayNumber != days[j].DayNumber {
			return days[i].DayNumber < days[j].DayNumber
		}
		return days[i].ID < days[j].ID
	})
	return days
}

func (s *Store) daySetsLocked(workoutDayID int) []fitapi.WorkoutDaySet {
	var sets []fitapi.WorkoutDaySet
	for _, set := range s.sets {
		if set.WorkoutDayID != workoutDayID {
			continue
		}
		set.MuscleGroup = s.muscleGroups[set.MuscleGroupID]
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].ID < sets[j].ID
	})
	return sets
}

func (s *Store) dayExercisesLocked(workoutDayID int) []fitapi.Exercise {
	var exercises []fitapi.Exercise
	for _, exercise := range s.exercises {
		if exercise.WorkoutDayID != workoutDayID {
			continue
		}
		exercises = append(exercises, exercise)
	}
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].ID < exercises[j].ID
	})
	return exercises
}

func (s *Store) UpdateRoutine(routineID int, params fitapi.UpdateRoutineParams) (fitapi.Routine, error) {
	if strings.TrimSpace(params.Name) == "" {
		return fitapi.Routine{}, ValidationError{Message: "Routine name is required"}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	routine, ok := s.routines[routineID]
	if !ok {
		return fitapi.Routine{}, NotFoundError{What: "Routine"}
	}

	routine.Name = params.Name
	routine.Description = params.Description
	routine.IsActive = params.IsActive
	routine.UpdatedAt = s.now().UTC()
	s.routines[routineID] = routine
	return routine, nil
}

// DeleteRoutine cascades: days, their sets and exercises, and the
// routine's snapshots all go with it.
func (s *Store) DeleteRoutine(routineID int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.routines[routineID]; !ok {
		return NotFoundError{What: "Routine"}
	}

	for dayID, day := range s.workoutDays {
		if day.RoutineID == routineID {
			s.deleteDayLocked(dayID)
		}
	}
	for key := range s.snapshots {
		if key.routineID == routineID {
			delete(s.snapshots, key)
		}
	}
	delete(s.routines, routineID)
	return nil
}

func (s *Store) CreateWorkoutDay(params fitapi.CreateWorkoutDayParams) (fitapi.WorkoutDay, error) {
	if params.DayNumber < 1 {
		return fitapi.WorkoutDay{}, ValidationError{Message: "Day number must be 1 or greater"}
	}
	if strings.TrimSpace(params.DayName) == "" {
		return fitapi.WorkoutDay{}, ValidationError{Message: "Day name is required"}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.routines[params.RoutineID]; !ok {
		return fitapi.WorkoutDay{}, NotFoundError{What: "Routine"}
	}

	now := s.now().UTC()
	day := fitapi.WorkoutDay{
		ID:        s.newID(),
		RoutineID: params.RoutineID,
		DayNumber: params.DayNumber,
		DayName:   params.DayName,
		Notes:     params.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.workoutDays[day.ID] = day
	return day, nil
}

func (s *Store) UpdateWorkoutDay(workoutDayID int, params fitapi.UpdateWorkoutDayParams) (fitapi.WorkoutDay, error) {
	if params.DayNumber < 1 {
		return fitapi.WorkoutDay{}, ValidationError{Message: "Day number must be 1 or greater"}
	}
	if strings.TrimSpace(params.DayName) == "" {
		return fitapi.WorkoutDay{}, ValidationError{Message: "Day name is required"}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	day, ok := s.workoutDays[workoutDayID]
	if !ok {
		return fitapi.WorkoutDay{}, NotFoundError{What: "Workout day"}
	}

	day.DayNumber = params.DayNumber
	day.DayName = params.DayName
	day.Notes = params.Notes
	day.UpdatedAt = s.now().UTC()
	s.workoutDays[workoutDayID] = day
	return day, nil
}

func (s *Store) DeleteWorkoutDay(workoutDayID int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.workoutDays[workoutDayID]; !ok {
		return NotFoundError{What: "Workout day"}
	}
	s.deleteDayLocked(workoutDayID)
	return nil
}

func (s *Store) deleteDayLocked(workoutDayID int) {
	for setID, set := range s.sets {
		if set.WorkoutDayID == workoutDayID {
			delete(s.sets, setID)
		}
	}
	for exerciseID, exercise := range s.exercises {
		if exercise.WorkoutDayID == workoutDayID {
			delete(s.exercises, exerciseID)
		}
	}
	delete(s.workoutDays, workoutDayID)
}

func (s *Store) CreateWorkoutDaySet(params fitapi.CreateWorkoutDaySetParams) (fitapi.WorkoutDaySet, error) {
	if params.NumberOfSets < 1 {
		return fitapi.WorkoutDaySet{}, ValidationError{Message: "Number of sets must be 1 or greater"}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.workoutDays[params.WorkoutDayID]; !ok {
		return fitapi.WorkoutDaySet{}, NotFoundError{What: "Workout day"}
	}
	if _, ok := s.muscleGroups[params.MuscleGroupID]; !ok {
		return fitapi.WorkoutDaySet{}, NotFoundError{What: "Muscle group"}
	}

	// one row per (workout day, muscle group)
	for _, set := range s.sets {
		if set.WorkoutDayID == params.WorkoutDayID && set.MuscleGroupID == params.MuscleGroupID {
			return fitapi.WorkoutDaySet{}, ValidationError{
				Message: "Workout day set for this muscle group already exists",
			}
		}
	}

	now := s.now().UTC()
	set := fitapi.WorkoutDaySet{
		ID:            s.newID(),
		WorkoutDayID:  params.WorkoutDayID,
		MuscleGroupID: params.MuscleGroupID,
		NumberOfSets:  params.NumberOfSets,
		MuscleGroup:   s.muscleGroups[params.MuscleGroupID],
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.sets[set.ID] = set
	return set, nil
}

func (s *Store) UpdateWorkoutDaySet(setID int, params fitapi.UpdateWorkoutDaySetParams) (fitapi.WorkoutDaySet, error) {
	if params.NumberOfSets < 1 {
		return fitapi.WorkoutDaySet{}, ValidationError{Message: "Number of sets must be 1 or greater"}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	set, ok := s.sets[setID]
	if !ok {
		return fitapi.WorkoutDaySet{}, NotFoundError{What: "Workout day set"}
	}
	return s.updateSetLocked(set, params), nil
}

// UpdateWorkoutDaySetByKey resolves the row by its natural key, the way
// the write service does when the path id is the zero placeholder.
func (s *Store) UpdateWorkoutDaySetByKey(workoutDayID, muscleGroupID int, params fitapi.UpdateWorkoutDaySetParams) (fitapi.WorkoutDaySet, error) {
	if params.NumberOfSets < 1 {
		return fitapi.WorkoutDaySet{}, ValidationError{Message: "Number of sets must be 1 or greater"}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, set := range s.sets {
		if set.WorkoutDayID == workoutDayID && set.MuscleGroupID == muscleGroupID {
			return s.updateSetLocked(set, params), nil
		}
	}
	return fitapi.WorkoutDaySet{}, NotFoundError{What: "Workout day set"}
}

func (s *Store) updateSetLocked(set fitapi.WorkoutDaySet, params fitapi.UpdateWorkoutDaySetParams) fitapi.WorkoutDaySet {
	set.NumberOfSets = params.NumberOfSets
	set.MuscleGroup = s.muscleGroups[set.MuscleGroupID]
	set.UpdatedAt = s.now().UTC()
	s.sets[set.ID] = set
	return set
}

func (s *Store) DeleteWorkoutDaySet(setID int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.sets[setID]; !ok {
		return NotFoundError{What: "Workout day set"}
	}
	delete(s.sets, setID)
	return nil
}

func (s *Store) CreateExercise(params fitapi.CreateExerciseParams) (fitapi.Exercise, error) {
	if err := validateExerciseFields(params.ExerciseFields); err != nil {
		return fitapi.Exercise{}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.workoutDays[params.WorkoutDayID]; !ok {
		return fitapi.Exercise{}, NotFoundError{What: "Workout day"}
	}
	if _, ok := s.muscleGroups[params.MuscleGroupID]; !ok {
		return fitapi.Exercise{}, NotFoundError{What: "Muscle group"}
	}

	now := s.now().UTC()
	exercise := fitapi.Exercise{
		ID:            s.newID(),
		WorkoutDayID:  params.WorkoutDayID,
		MuscleGroupID: params.MuscleGroupID,
		ExerciseName:  params.ExerciseName,
		TotalReps:     params.TotalReps,
		Weight:        params.Weight,
		TotalSets:     params.TotalSets,
		Notes:         params.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.exercises[exercise.ID] = exercise
	return exercise, nil
}

func (s *Store) UpdateExercise(exerciseID int, params fitapi.UpdateExerciseParams) (fitapi.Exercise, error) {
	if err := validateExerciseFields(params.ExerciseFields); err != nil {
		return fitapi.Exercise{}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	exercise, ok := s.exercises[exerciseID]
	if !ok {
		return fitapi.Exercise{}, NotFoundError{What: "Exercise"}
	}

	exercise.ExerciseName = params.ExerciseName
	exercise.TotalReps = params.TotalReps
	exercise.Weight = params.Weight
	exercise.TotalSets = params.TotalSets
	exercise.Notes = params.Notes
	exercise.UpdatedAt = s.now().UTC()
	s.exercises[exerciseID] = exercise
	return exercise, nil
}

func (s *Store) DeleteExercise(exerciseID int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.exercises[exerciseID]; !ok {
		return NotFoundError{What: "Exercise"}
	}
	delete(s.exercises, exerciseID)
	return nil
}

func (s *Store) ListWorkoutDayExercises(workoutDayID int) ([]fitapi.Exercise, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if _, ok := s.workoutDays[workoutDayID]; !ok {
		return nil, NotFoundError{What: "Workout day"}
	}
	return s.dayExercisesLocked(workoutDayID), nil
}

func validateExerciseFields(fields fitapi.ExerciseFields) error {
	if strings.TrimSpace(fields.ExerciseName) == "" {
		return ValidationError{Message: "Exercise name is required"}
	}
	if fields.TotalReps < 0 {
		return ValidationError{Message: "Total reps must be 0 or greater"}
	}
	if fields.Weight < 0 {
		return ValidationError{Message: "Weight must be 0 or greater"}
	}
	if fields.TotalSets < 0 {
		return ValidationError{Message: "Total sets must be 0 or greater"}
	}
	return nil
}

// CreateSnapshot deep-copies the routine's current graph under the key
// (routine, current week). A second snapshot in the same week replaces the
// first one.
func (s *Store) CreateSnapshot(routineID int) (fitapi.WeeklySnapshot, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.routines[routineID]; !ok {
		return fitapi.WeeklySnapshot{}, NotFoundError{What: "Routine"}
	}

	weekStart := routines.WeekStartDate(s.now())
	meta := fitapi.WeeklySnapshot{
		ID:            s.newID(),
		RoutineID:     routineID,
		WeekStartDate: weekStart,
		CreatedAt:     s.now().UTC(),
	}
	s.snapshots[snapshotKey{routineID: routineID, weekStart: weekStart}] = weeklySnapshot{
		meta: meta,
		days: s.routineDaysLocked(routineID),
	}
	return meta, nil
}

// WeeklyReport aggregates the routine's snapshot for the current week.
// With no snapshot, an empty report with hasSnapshot=false comes back.
func (s *Store) WeeklyReport(routineID int) (fitapi.WeeklyReport, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if _, ok := s.routines[routineID]; !ok {
		return fitapi.WeeklyReport{}, NotFoundError{What: "Routine"}
	}

	weekStart := routines.WeekStartDate(s.now())
	report := fitapi.WeeklyReport{
		RoutineID:         routineID,
		WeekStartDate:     weekStart,
		MuscleGroupTotals: []fitapi.MuscleGroupTotal{},
		ExerciseTotals:    []fitapi.ExerciseTotal{},
	}

	snapshot, ok := s.snapshots[snapshotKey{routineID: routineID, weekStart: weekStart}]
	if !ok {
		return report, nil
	}

	createdAt := snapshot.meta.CreatedAt
	report.HasSnapshot = true
	report.SnapshotCreatedAt = &createdAt
	report.MuscleGroupTotals = s.muscleGroupTotalsLocked(snapshot.days)
	report.ExerciseTotals = s.exerciseTotalsLocked(snapshot.days)
	return report, nil
}

// muscleGroupTotalsLocked sums planned set counts per muscle group across
// the snapshot days; groups that never appear carry no zero rows.
func (s *Store) muscleGroupTotalsLocked(days []fitapi.WorkoutDay) []fitapi.MuscleGroupTotal {
	setsPerGroup := map[int]int{}
	for _, day := range days {
		for _, set := range day.Sets {
			setsPerGroup[set.MuscleGroupID] += set.NumberOfSets
		}
	}

	totals := make([]fitapi.MuscleGroupTotal, 0, len(setsPerGroup))
	for muscleGroupID, totalSets := range setsPerGroup {
		totals = append(totals, fitapi.MuscleGroupTotal{
			MuscleGroup: s.muscleGroups[muscleGroupID],
			TotalSets:   totalSets,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].MuscleGroup.ID < totals[j].MuscleGroup.ID
	})
	return totals
}

// exerciseTotalsLocked groups logged exercises by their exact name:
// reps and sets are summed, weight keeps the heaviest occurrence, and the
// muscle group comes from the first occurrence.
func (s *Store) exerciseTotalsLocked(days []fitapi.WorkoutDay) []fitapi.ExerciseTotal {
	totalsByName := map[string]*fitapi.ExerciseTotal{}
	var order []string

	for _, day := range days {
		for _, exercise := range day.Exercises {
			total, ok := totalsByName[exercise.ExerciseName]
			if !ok {
				total = &fitapi.ExerciseTotal{
					ExerciseName: exercise.ExerciseName,
					MuscleGroup:  s.muscleGroups[exercise.MuscleGroupID],
				}
				totalsByName[exercise.ExerciseName] = total
				order = append(order, exercise.ExerciseName)
			}
			total.TotalReps += exercise.TotalReps
			total.TotalSets += exercise.TotalSets
			if exercise.Weight > total.TotalWeight {
				total.TotalWeight = exercise.Weight
			}
		}
	}

	totals := make([]fitapi.ExerciseTotal, 0, len(order))
	for _, name := range order {
		totals = append(totals, *totalsByName[name])
	}
	return totals
}
