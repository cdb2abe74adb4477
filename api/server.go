package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/ksalau/learnflow-backend/auth"
	"github.com/ksalau/learnflow-backend/config"
	"github.com/ksalau/learnflow-backend/database"
	"github.com/ksalau/learnflow-backend/uploads"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router, err := newRouter(database, withConfig(c), withStartupTime(startupTime))
	if err != nil {
		return Server{}, err
	}

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	c := router.config

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	// Apply CORS middleware
	acceptedOrigins := config.GetStrings(c, "ACCEPTED_ORIGINS")
	if len(acceptedOrigins) == 0 {
		acceptedOrigins = []string{"*"}
	}
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	deps, uploadsDir, err := buildHandlerDeps(c, database)
	if err != nil {
		return nil, err
	}

	// Initialize all handlers
	handlers := initializeHandlers(database, deps)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(deps.tokens, database.UserRepo())

	// Setup all route types
	setupRoutes(chiRouter, handlers, authMiddleware, router.startupTime)

	// Locally stored uploads are served straight off disk
	if uploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
		chiRouter.Get("/uploads/*", fileServer.ServeHTTP)
	}

	return chiRouter, nil
}

// buildHandlerDeps assembles the non-repository dependencies from config. The
// returned string is the local uploads directory, empty when S3 is in use.
func buildHandlerDeps(c map[string]string, database database.Database) (handlerDeps, string, error) {
	tokens := auth.NewTokenIssuer(
		config.GetString(c, "JWT_SECRET", ""),
		config.GetDuration(c, "SESSION_LIFETIME", auth.DefaultSessionLifetime),
	)

	policy := auth.NewAdminPolicy(config.GetStrings(c, "ADMIN_EMAILS"))
	google := auth.NewGoogleAuthenticator(
		config.GetString(c, "GOOGLE_CLIENT_ID", ""),
		config.GetString(c, "GOOGLE_CLIENT_SECRET", ""),
		config.GetString(c, "GOOGLE_CALLBACK_URL", ""),
		policy,
		database.UserRepo(),
	)

	store, uploadsDir, err := buildUploadStore(c)
	if err != nil {
		return handlerDeps{}, "", err
	}

	siteURL := config.GetString(c, "SITE_URL", "http://localhost:8080")

	return handlerDeps{
		tokens:      tokens,
		google:      google,
		store:       store,
		frontendURL: config.GetString(c, "FRONTEND_URL", siteURL),
		site: siteMeta{
			URL:         siteURL,
			Title:       config.GetString(c, "SITE_TITLE", "LearnFlow"),
			Description: config.GetString(c, "SITE_DESCRIPTION", "Portfolio and blog"),
		},
		validate: validator.New(),
	}, uploadsDir, nil
}

func buildUploadStore(c map[string]string) (uploads.Store, string, error) {
	switch backend := config.GetString(c, "UPLOAD_BACKEND", "disk"); backend {
	case "s3":
		store, err := uploads.NewS3Store(
			context.Background(),
			config.GetString(c, "S3_BUCKET", ""),
			config.GetString(c, "S3_PUBLIC_URL", ""),
		)
		return store, "", err
	case "disk":
		dir := config.GetString(c, "UPLOAD_DIR", "./uploads")
		store, err := uploads.NewDiskStore(dir, config.GetString(c, "UPLOAD_BASE_URL", "/uploads"))
		return store, dir, err
	default:
		return nil, "", fmt.Errorf("unknown UPLOAD_BACKEND %q", backend)
	}
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
