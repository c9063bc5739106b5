package http

import (
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	requestMiddleware   *middleware.RequestMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	requestMiddleware *middleware.RequestMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		requestMiddleware:   requestMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet, http.MethodOptions)

	// Loader state of the doctor catalog
	api.HandleFunc("/status", r.doctorHandler.GetStatus).Methods(http.MethodGet, http.MethodOptions)

	// Directory routes, rate limited
	directory := api.NewRoute().Subrouter()
	directory.Use(r.rateLimitMiddleware.Handle)
	directory.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet, http.MethodOptions)
	directory.HandleFunc("/doctors/suggestions", r.doctorHandler.GetSuggestions).Methods(http.MethodGet, http.MethodOptions)
	directory.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet, http.MethodOptions)
	directory.HandleFunc("/view/actions", r.doctorHandler.ApplyViewAction).Methods(http.MethodPost, http.MethodOptions)

	// Add request and CORS middleware; CORS answers OPTIONS preflights itself
	r.router.Use(r.requestMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
