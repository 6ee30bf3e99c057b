package main

import (
	"fmt"
	"log"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/configs"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/middlewares"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// demo data, first boot only
	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
