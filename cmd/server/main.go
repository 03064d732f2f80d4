package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kvacad/studyhub/internal/api"
	"github.com/kvacad/studyhub/internal/api/handlers"
	"github.com/kvacad/studyhub/internal/api/services"
	"github.com/kvacad/studyhub/internal/config"
	"github.com/kvacad/studyhub/internal/repositories"
)

// @title StudyHub Portal API
// @version 1.0
// @description Backend for the university-department study materials portal.
// @BasePath /
func main() {
	// Connect to database
	repositories.ConnectDatabase()

	storage := config.Envs.Storage
	if err := repositories.InitStorage(
		storage.AccessKeyID,
		storage.SecretAccessKey,
		storage.AccountID,
		storage.BucketName,
		storage.Region,
		storage.PublicBaseURL,
	); err != nil {
		log.Fatalf("Could not initialize object storage: %v", err)
	}

	handlers.Snapshots = services.NewSnapshotService(repositories.LoadRawRecords)

	mux := api.SetupRouter()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Envs.Port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting StudyHub server on port: %s", config.Envs.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", config.Envs.Port, err)
	}
}
