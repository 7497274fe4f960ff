package main

import (
	"log"

	"barplexity-be/internal/bootstrap"
	"barplexity-be/internal/config"
	"barplexity-be/internal/server"
)

func main() {
	cfg := config.Load()

	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer container.Logger.Sync()

	srv := server.New(cfg, container)
	if err := srv.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
