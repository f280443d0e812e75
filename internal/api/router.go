package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jaeholee/agenda-be/internal/api/handlers"
	"github.com/jaeholee/agenda-be/internal/auth"
	"github.com/jaeholee/agenda-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(tokens *auth.TokenService, authService services.AuthServiceProvider, agendaService services.AgendaServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	agendaHandler := handlers.NewAgendaHandler(agendaService)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("I'm alive!"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		// Routes below require a valid bearer token
		r.Route("/agendas", func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Post("/", agendaHandler.Create)
		})
	})

	return r
}
