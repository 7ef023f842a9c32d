package main

import (
	"fmt"
	"log"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/configs"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/middlewares"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/routes"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedOrganization(cfg); err != nil {
		log.Fatalf("seed organization failed: %v", err)
	}

	// realtime table-change events
	hub := ws.NewEventHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
