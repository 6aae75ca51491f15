package mockapi

import (
	"net/http"

	"github.com/xqfit/routines/pkg"
)

func (s *Server) handleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSONResponse(w, s.store.ListMuscleGroups(), http.StatusOK)
}

func (s *Server) handleListRoutines(w http.ResponseWriter, r *http.Request) {
	var isActive *bool
	if rawIsActive := r.URL.Query().Get("isActive"); rawIsActive != "" {
		active := rawIsActive == "true"
		isActive = &active
	}
	pkg.WriteJSONResponse(w, s.store.ListRoutines(isActive), http.StatusOK)
}

func (s *Server) handleGetRoutine(w http.ResponseWriter, r *http.Request) {
	routineID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid routine id", http.StatusBadRequest)
		return
	}

	routine, err := s.store.GetRoutine(routineID)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, routine, http.StatusOK)
}

func (s *Server) handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	routineID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid routine id", http.StatusBadRequest)
		return
	}

	report, err := s.store.WeeklyReport(routineID)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, report, http.StatusOK)
}

func (s *Server) handleListDayExercises(w http.ResponseWriter, r *http.Request) {
	workoutDayID, ok := pathID(r)
	if !ok {
		pkg.WriteJSONError(w, "Invalid workout day id", http.StatusBadRequest)
		return
	}

	exercises, err := s.store.ListWorkoutDayExercises(workoutDayID)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, exercises, http.StatusOK)
}
