package http

import (
	"net/http"

	"docconnect/internal/delivery/http/handler"
	"docconnect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router             *mux.Router
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		metricsMiddleware:  metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus metrics (outside the API prefix)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory routes; /doctors/suggestions is registered before /doctors/{id}
	api.HandleFunc("/doctors", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.GetSuggestions).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/catalog", r.doctorHandler.GetCatalog).Methods(http.MethodGet)

	// Appointment routes
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
