package handler

import (
	"net/http"

	"quillpad-server/internal/config"
	"quillpad-server/internal/middleware"
	"quillpad-server/internal/repository"
	"quillpad-server/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires services, handlers and the middleware chain. Routes under
// the protected subrouter only run after the bearer token resolved to an
// existing user.
func NewRouter(cfg *config.Config, users repository.UserRepository, notes repository.NoteRepository) *mux.Router {
	authService := service.NewAuthService(users, cfg.JWT.Secret, cfg.JWT.Expiration)
	noteService := service.NewNoteService(notes)

	authHandler := NewAuthHandler(authService)
	noteHandler := NewNoteHandler(noteService)

	r := mux.NewRouter()

	r.Use(middleware.Logger())
	r.Use(middleware.CORS(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	r.HandleFunc("/health", healthHandler).Methods("GET")

	r.HandleFunc("/register", authHandler.Register).Methods("POST", "OPTIONS")
	r.HandleFunc("/login", authHandler.Login).Methods("POST", "OPTIONS")

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.JWT.Secret, users))

	protected.HandleFunc("/me", Me).Methods("GET", "OPTIONS")

	protected.HandleFunc("/notes", noteHandler.List).Methods("GET", "OPTIONS")
	protected.HandleFunc("/notes", noteHandler.Create).Methods("POST", "OPTIONS")
	protected.HandleFunc("/notes/{id}", noteHandler.Update).Methods("PUT", "OPTIONS")
	protected.HandleFunc("/notes/{id}", noteHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"quillpad-server"}`))
}
