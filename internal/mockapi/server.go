package mockapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/xqfit/routines/internal/middleware"
	"github.com/xqfit/routines/internal/telemetry/metrics"
	"github.com/xqfit/routines/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// Server mimics the xq-fitness read and write services in-process: same
// routes, same {"message"} error bodies, no real backend needed. Tests
// construct one per test over a fresh Store.
type Server struct {
	store   *Store
	metrics *metrics.Manager

	// set by Serve, nil when only the handlers are used
	httpServer        *http.Server
	metricsHttpServer *http.Server
}

func NewServer(store *Store, metricsManager *metrics.Manager) *Server {
	return &Server{
		store:   store,
		metrics: metricsManager,
	}
}

// ReadHandler serves the read service routes under /api/v1.
func (s *Server) ReadHandler() http.Handler {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitness-read-mock"))
	s.registerReadRoutes(r.PathPrefix("/api/v1").Subrouter())
	s.applyMiddleware(r)
	return r
}

// WriteHandler serves the write service routes under /api/v1.
func (s *Server) WriteHandler() http.Handler {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitness-write-mock"))
	s.registerWriteRoutes(r.PathPrefix("/api/v1").Subrouter())
	s.applyMiddleware(r)
	return r
}

// CombinedHandler serves both services behind gateway-style path prefixes,
// the way the real gateway exposes them:
// /<service-name>/api/v1/... for each of the two services.
func (s *Server) CombinedHandler(readServiceName, writeServiceName string) http.Handler {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitness-gateway-mock"))
	s.registerReadRoutes(r.PathPrefix("/" + readServiceName + "/api/v1").Subrouter())
	s.registerWriteRoutes(r.PathPrefix("/" + writeServiceName + "/api/v1").Subrouter())
	s.applyMiddleware(r)
	return r
}

func (s *Server) applyMiddleware(r *mux.Router) {
	r.Use(middleware.PanicRecovery(s.metrics))
	r.Use(middleware.LogRequest())
	if s.metrics != nil {
		r.Use(middleware.RequestMetrics(s.metrics))
	}
	r.Use(middleware.DrainAndCloseRequest())
}

func (s *Server) registerReadRoutes(r *mux.Router) {
	r.HandleFunc("/muscle-groups", s.handleListMuscleGroups).Methods("GET").Name("list-muscle-groups")
	r.HandleFunc("/routines", s.handleListRoutines).Methods("GET").Name("list-routines")
	r.HandleFunc("/routines/{id}", s.handleGetRoutine).Methods("GET").Name("get-routine")
	r.HandleFunc("/routines/{id}/weekly-report", s.handleWeeklyReport).Methods("GET").Name("weekly-report")
	r.HandleFunc("/workout-days/{id}/exercises", s.handleListDayExercises).Methods("GET").Name("list-day-exercises")
}

func (s *Server) registerWriteRoutes(r *mux.Router) {
	r.HandleFunc("/routines", s.handleCreateRoutine).Methods("POST").Name("create-routine")
	r.HandleFunc("/routines/{id}", s.handleUpdateRoutine).Methods("PUT").Name("update-routine")
	r.HandleFunc("/routines/{id}", s.handleDeleteRoutine).Methods("DELETE").Name("delete-routine")
	r.HandleFunc("/routines/{id}/snapshots", s.handleCreateSnapshot).Methods("POST").Name("create-snapshot")

	r.HandleFunc("/workout-days", s.handleCreateWorkoutDay).Methods("POST").Name("create-workout-day")
	r.HandleFunc("/workout-days/{id}", s.handleUpdateWorkoutDay).Methods("PUT").Name("update-workout-day")
	r.HandleFunc("/workout-days/{id}", s.handleDeleteWorkoutDay).Methods("DELETE").Name("delete-workout-day")

	r.HandleFunc("/workout-day-sets", s.handleCreateWorkoutDaySet).Methods("POST").Name("create-workout-day-set")
	r.HandleFunc("/workout-day-sets/{id}", s.handleUpdateWorkoutDaySet).Methods("PUT").Name("update-workout-day-set")
	r.HandleFunc("/workout-day-sets/{id}", s.handleDeleteWorkoutDaySet).Methods("DELETE").Name("delete-workout-day-set")

	r.HandleFunc("/exercises", s.handleCreateExercise).Methods("POST").Name("create-exercise")
	r.HandleFunc("/exercises/{id}", s.handleUpdateExercise).Methods("PUT").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", s.handleDeleteExercise).Methods("DELETE").Name("delete-exercise")
}

// writeError translates store errors to the services' wire shape.
func writeError(w http.ResponseWriter, err error) {
	var notFound NotFoundError
	if errors.As(err, &notFound) {
		pkg.WriteJSONError(w, notFound.Error(), http.StatusNotFound)
		return
	}

	var validation ValidationError
	if errors.As(err, &validation) {
		pkg.WriteJSONError(w, validation.Message, http.StatusBadRequest)
		return
	}

	log.Errorf("mockapi: unexpected error: %s", err)
	pkg.WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
}

// pathID reads the {id} route variable. The services reject non-numeric
// ids with a 400 before touching storage.
func pathID(r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0, false
	}
	return id, true
}
