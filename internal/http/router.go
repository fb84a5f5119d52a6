package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"hallbook/internal/config"
	"hallbook/internal/hallbook"
)

type Router struct {
	mux      *chi.Mux
	repo     *hallbook.Repository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewRouter(repo *hallbook.Repository, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := &Router{
		mux:      chi.NewRouter(),
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}

	r.mux.Use(r.requestLogger)
	if cfg.CORS.Enable {
		r.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
		}))
	}

	r.routes()
	return r.mux
}

func (r *Router) routes() {
	r.mux.Route("/api", func(api chi.Router) {
		api.Get("/", r.handleRoot)
		api.Get("/health", r.handleHealth)

		api.Post("/users", r.handleCreateUser)
		api.Get("/users/{id}", r.handleGetUser)
		api.Put("/users/{id}", r.handleUpdateUser)

		api.Get("/venues", r.handleListVenues)
		api.Post("/venues", r.handleCreateVenue)
		api.Get("/venues/{id}", r.handleGetVenue)

		api.Post("/bookings", r.handleCreateBooking)
		api.Get("/bookings/user/{userID}", r.handleListUserBookings)
		api.Get("/bookings/{id}", r.handleGetBooking)
		api.Put("/bookings/{id}/status", r.handleUpdateBookingStatus)

		api.Get("/services", r.handleListServices)
		api.Post("/services", r.handleCreateService)

		api.Route("/wedding-tools", func(tools chi.Router) {
			tools.Get("/budget/{userID}", r.handleGetWeddingBudget)
			tools.Put("/budget/{userID}", r.handleUpdateWeddingBudget)
			tools.Get("/guests/{userID}", r.handleGetGuestList)
			tools.Put("/guests/{userID}", r.handleUpdateGuestList)
			tools.Get("/timeline/{userID}", r.handleGetWeddingTimeline)
			tools.Put("/timeline/{userID}", r.handleUpdateWeddingTimeline)
		})

		api.Route("/support", func(support chi.Router) {
			support.Post("/tickets", r.handleCreateTicket)
			support.Post("/tickets/{id}/messages", r.handleAddTicketMessage)
			support.Get("/faqs", r.handleListFAQs)
			support.Post("/faqs", r.handleCreateFAQ)
		})
	})
}

func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "HallBook API is running!",
		"version": "1.0.0",
	})
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "hallbook-api",
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		r.log.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
