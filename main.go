package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/nntexpressinc/blackhawks.tms-sub001/configs"
	"github.com/nntexpressinc/blackhawks.tms-sub001/middlewares"
	"github.com/nntexpressinc/blackhawks.tms-sub001/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedFleet(); err != nil {
		log.Fatalf("seed fleet failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// serve attached documents
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
