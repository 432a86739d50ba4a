package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"pizzeria_backend/internal/middleware"
	"pizzeria_backend/internal/router"
	"pizzeria_backend/internal/store"
	"pizzeria_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	// Initialize Logger
	utils.InitLogger()

	// Store file locations
	dbFile := utils.Getenv("PIZZERIA_DB_FILE", "pizzaria_db.xlsx")
	configFile := utils.Getenv("PIZZERIA_CONFIG_FILE", "config_empresa.json")

	st, err := store.Open(dbFile, configFile)
	if err != nil {
		utils.LogError(err, "Failed to open the data store")
		log.Fatalf("Could not load %s / %s: %v\nIf the files are corrupted, delete them and the system will recreate an empty database.", dbFile, configFile, err)
	}
	utils.LogInfo("Data store loaded", map[string]interface{}{"db_file": dbFile, "config_file": configFile})

	engine := gin.Default()

	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, st)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
