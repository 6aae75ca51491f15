package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/xqfit/routines/internal/fitapi"
	"github.com/xqfit/routines/pkg"
)

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		pkg.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) handleCreateRoutine(w http.ResponseWriter, r *http.Request) {
	var params fitapi.CreateRoutineParams
	if !decodeBody(w, r, &params) {
		return
	}

	routine, err := s.store.CreateRoutine(params)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, routine, http.StatusCreated)
}

func (s *Server) handleUpdateRoutine(w http.ResponseWriter, r *http.Request) {
	routineID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid routine id", http.StatusBadRequest)
		return
	}

	var params fitapi.UpdateRoutineParams
	if !decodeBody(w, r, &params) {
		return
	}

	routine, err := s.store.UpdateRoutine(routineID, params)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, routine, http.StatusOK)
}

func (s *Server) handleDeleteRoutine(w http.ResponseWriter, r *http.Request) {
	routineID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid routine id", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteRoutine(routineID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateSnapshot(w http.ResponseWriter, r *http.Request) {
	routineID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid routine id", http.StatusBadRequest)
		return
	}

	snapshot, err := s.store.CreateSnapshot(routineID)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, snapshot, http.StatusCreated)
}

func (s *Server) handleCreateWorkoutDay(w http.ResponseWriter, r *http.Request) {
	var params fitapi.CreateWorkoutDayParams
	if !decodeBody(w, r, &params) {
		return
	}

	day, err := s.store.CreateWorkoutDay(params)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, day, http.StatusCreated)
}

func (s *Server) handleUpdateWorkoutDay(w http.ResponseWriter, r *http.Request) {
	workoutDayID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid workout day id", http.StatusBadRequest)
		return
	}

	var params fitapi.UpdateWorkoutDayParams
	if !decodeBody(w, r, &params) {
		return
	}

	day, err := s.store.UpdateWorkoutDay(workoutDayID, params)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, day, http.StatusOK)
}

func (s *Server) handleDeleteWorkoutDay(w http.ResponseWriter, r *http.Request) {
	workoutDayID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid workout day id", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteWorkoutDay(workoutDayID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateWorkoutDaySet(w http.ResponseWriter, r *http.Request) {
	var params fitapi.CreateWorkoutDaySetParams
	if !decodeBody(w, r, &params) {
		return
	}

	set, err := s.store.CreateWorkoutDaySet(params)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, set, http.StatusCreated)
}

// handleUpdateWorkoutDaySet resolves by row id, unless the id is the zero
// placeholder and the natural key arrives via query params.
func (s *Server) handleUpdateWorkoutDaySet(w http.ResponseWriter, r *http.Request) {
	setID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid workout day set id", http.StatusBadRequest)
		return
	}

	var params fitapi.UpdateWorkoutDaySetParams
	if !decodeBody(w, r, &params) {
		return
	}

	query := r.URL.Query()
	if setID == 0 && query.Get("workoutDayId") != "" && query.Get("muscleGroupId") != "" {
		workoutDayID, err := strconv.Atoi(query.Get("workoutDayId"))
		if err != nil {
			pkg.WriteJSONError(w, "Invalid workout day id", http.StatusBadRequest)
			return
		}
		muscleGroupID, err := strconv.Atoi(query.Get("muscleGroupId"))
		if err != nil {
			pkg.WriteJSONError(w, "Invalid muscle group id", http.StatusBadRequest)
			return
		}

		set, err := s.store.UpdateWorkoutDaySetByKey(workoutDayID, muscleGroupID, params)
		if err != nil {
			writeError(w, err)
			return
		}
		pkg.WriteJSONResponse(w, set, http.StatusOK)
		return
	}

	set, err := s.store.UpdateWorkoutDaySet(setID, params)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, set, http.StatusOK)
}

func (s *Server) handleDeleteWorkoutDaySet(w http.ResponseWriter, r *http.Request) {
	setID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid workout day set id", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteWorkoutDaySet(setID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var params fitapi.CreateExerciseParams
	if !decodeBody(w, r, &params) {
		return
	}

	exercise, err := s.store.CreateExercise(params)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, exercise, http.StatusCreated)
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid exercise id", http.StatusBadRequest)
		return
	}

	var params fitapi.UpdateExerciseParams
	if !decodeBody(w, r, &params) {
		return
	}

	exercise, err := s.store.UpdateExercise(exerciseID, params)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, exercise, http.StatusOK)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid exercise id", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteExercise(exerciseID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
