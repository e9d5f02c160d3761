// Package main provides the Inkwell notes backend server.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/inkwell-notes/backend/cmd/server/handlers"
	"github.com/inkwell-notes/backend/internal/db"
	"github.com/inkwell-notes/backend/internal/logging"
	"github.com/inkwell-notes/backend/internal/notes"
)

func main() {
	addr := flag.String("addr", envOr("INKWELL_ADDR", ":8090"), "listen address")
	dataDir := flag.String("data-dir", envOr("INKWELL_DATA_DIR", "./data"), "database directory")
	logLevel := flag.String("log-level", envOr("INKWELL_LOG_LEVEL", "info"), "minimum log level")
	flag.Parse()

	logging.Init(os.Stdout, logging.ParseLevel(*logLevel))

	database, err := db.Open(*dataDir)
	if err != nil {
		logging.Error("failed to open database", err, logging.Fields{"data_dir": *dataDir})
		os.Exit(1)
	}
	defer database.Close()

	migrator := db.NewMigrator(database.DB)
	if err := migrator.Initialize(); err != nil {
		logging.Error("failed to initialize migration state", err, nil)
		os.Exit(1)
	}
	if err := migrator.Up(); err != nil {
		logging.Error("failed to apply migrations", err, nil)
		os.Exit(1)
	}

	repo := db.NewRepository(database.DB)
	defer repo.Close()

	svc := notes.NewService(repo)
	router := handlers.NewRouter(svc, repo)

	logging.Info("server listening", logging.Fields{"addr": *addr, "data_dir": *dataDir})
	if err := http.ListenAndServe(*addr, router); err != nil {
		logging.Error("server stopped", err, nil)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
