package main

import (
	"context"
	"os"
	"time"

	"homenest/server/config"
	"homenest/server/internal/api"
	"homenest/server/internal/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Connect to the document store once; the client is shared by all
	// request handlers
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	db, err := database.NewDatabase(ctx, cfg.URI(), cfg.Database.Name)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to the database")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.WithError(err).Error("Failed to close database connection")
		}
	}()
	logger.Infof("Connected to MongoDB, database %s", cfg.Database.Name)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	api.SetupRoutes(router, db, logger)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
