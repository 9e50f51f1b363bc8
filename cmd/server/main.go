package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jpsrealtor/cma/config"
	"jpsrealtor/cma/internal/api"
	"jpsrealtor/cma/internal/database"
	"jpsrealtor/cma/internal/report"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using info", cfg.Logging.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	defaults, err := config.LoadDefaults(cfg.DefaultsFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load CMA defaults")
	}

	dsn := cfg.Database.Path
	if cfg.Database.Driver == "mysql" {
		dsn = cfg.Database.DSN
	} else {
		logger.Infof("Using database at: %s", dsn)
	}

	db, err := database.Open(cfg.Database.Driver, dsn, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	service := report.NewService(db, defaults.Tolerances, defaults.Assumptions, logger)
	batch := report.NewBatchProcessor(service, cfg.BatchProcessing.ProcessorCount, cfg.BatchProcessing.MaxBatchSize)
	handler := api.NewHandler(service, batch, logger)

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, handler, cfg.Server.CORSOrigins)

	logger.WithFields(logrus.Fields{
		"port":            cfg.Server.Port,
		"driver":          cfg.Database.Driver,
		"batch_workers":   cfg.BatchProcessing.ProcessorCount,
		"batch_max_size":  cfg.BatchProcessing.MaxBatchSize,
		"defaults_loaded": cfg.DefaultsFile != "",
	}).Info("Starting server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
