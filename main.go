// Package main is the entry point for the beerfactory API server. It
// loads configuration, connects the dependencies, and starts the HTTP
// server.
package main

import (
	"context"
	"log"
	"os"

	"beerfactory/src/app/server"
	"beerfactory/src/infra/config"
	"beerfactory/src/infra/db"
	"beerfactory/src/infra/logger"
	"beerfactory/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	beerRepo := repo.NewPostgresBeerRepository(pg, log)

	srv, err := server.New(cfg, log, beerRepo)
	if err != nil {
		return err
	}

	// Run blocks until a shutdown signal is received.
	return srv.Run()
}
