package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/joshishrau/FacilityFlow/internal/app"
	"github.com/joshishrau/FacilityFlow/internal/config"
)

func main() {
	// Local development convenience; the file is optional.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
