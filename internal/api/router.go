package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/kvacad/studyhub/docs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kvacad/studyhub/internal/api/handlers"
	"github.com/kvacad/studyhub/internal/api/middleware"
	"github.com/kvacad/studyhub/internal/config"
	"github.com/rs/cors"
)

func SetupRouter() http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.Handle("/metrics", promhttp.Handler())
	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("/sign-up", handlers.RegisterUser)
	authMux.HandleFunc("/login", handlers.LoginUser)
	authMux.HandleFunc("/google/login", handlers.HandleGoogleLogin)
	authMux.HandleFunc("/google/callback", handlers.HandleGoogleCallback)

	mainMux.Handle("/api/v1/auth/",
		http.StripPrefix("/api/v1/auth", authMux),
	)

	// Reading the collection and the derived views is open; students browse
	// without an account.
	mainMux.HandleFunc("GET /api/v1/files", handlers.ListFiles)
	mainMux.HandleFunc("POST /api/v1/files/batch", handlers.BatchUpload)
	mainMux.HandleFunc("GET /api/v1/files/{id}/download", handlers.DownloadURL)
	mainMux.HandleFunc("GET /api/v1/views/partition", handlers.PartitionView)
	mainMux.HandleFunc("GET /api/v1/views/recent", handlers.RecentView)
	mainMux.HandleFunc("GET /api/v1/views/search", handlers.SearchView)
	mainMux.HandleFunc("GET /api/v1/gallery", handlers.ListGallery)
	mainMux.HandleFunc("POST /api/v1/feedback", handlers.SubmitFeedback)

	// ---------- PROTECTED ROUTES ----------
	// Collection and gallery mutations need an admin session.
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.RequireAdmin(h))
	}
	mainMux.Handle("POST /api/v1/files", adminOnly(handlers.MutateFiles))
	mainMux.Handle("POST /api/v1/gallery", adminOnly(handlers.UploadGallery))
	mainMux.Handle("GET /api/v1/feedback", adminOnly(handlers.ListFeedback))

	mainMux.Handle("POST /api/v1/auth/logout",
		middleware.AuthMiddleware(http.HandlerFunc(handlers.Logout)),
	)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Metrics(handler)
	handler = middleware.Logger(handler)
	return handler
}
