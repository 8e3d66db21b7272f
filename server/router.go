package server

import (
	"net/http"
	"time"

	"bike-dashboard/util/log"

	"github.com/gorilla/mux"
)

// DashboardRoutes is the set of handlers the router exposes.
type DashboardRoutes interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetOptions(w http.ResponseWriter, r *http.Request)
	GetDashboardPage(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dashboardHandler DashboardRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	dashboardHandler DashboardRoutes,
	router *mux.Router) *Router {
	return &Router{
		dashboardHandler: dashboardHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestLogger)

	// expects ?start=YYYY-MM-DD&end=YYYY-MM-DD&weather=..&season=..&month=..
	r.router.HandleFunc("/v1/dashboard", r.dashboardHandler.GetDashboard).Methods("GET")
	r.router.HandleFunc("/v1/dashboard/options", r.dashboardHandler.GetOptions).Methods("GET")
	r.router.HandleFunc("/dashboard", r.dashboardHandler.GetDashboardPage).Methods("GET")

	r.router.HandleFunc("/ping", r.dashboardHandler.Ping).Methods("GET")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.size += n
	return n, err
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"size", rec.size,
			"remote_addr", r.RemoteAddr,
		)
	})
}
