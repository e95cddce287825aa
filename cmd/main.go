package main

import (
	"log"
	"net/http"

	"github.com/nikhil/hackfest/internal/config"
	databasego "github.com/nikhil/hackfest/internal/database.go"
	"github.com/nikhil/hackfest/internal/events"
	"github.com/nikhil/hackfest/internal/payments"
	"github.com/nikhil/hackfest/internal/routes"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db, err := databasego.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	provider, err := payments.NewProvider(cfg)
	if err != nil {
		log.Fatal("Failed to initialize payment provider: ", err)
	}

	hub := events.NewHub()
	go hub.Run()

	router := routes.RegisterAllRoutes(db, cfg, provider, hub)

	log.Printf("Server is running on %s...", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, router))
}
