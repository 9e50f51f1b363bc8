// Command seed loads listing sample data into the CMA datastore.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"jpsrealtor/cma/config"
	"jpsrealtor/cma/internal/database"
	"jpsrealtor/cma/internal/models"
)

func main() {
	file := flag.String("file", "", "JSON array of listings to upsert")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if *file == "" {
		logger.Fatal("-file is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.WithError(err).Fatal("Failed to read listings file")
	}

	var listings []*models.Property
	if err := json.Unmarshal(data, &listings); err != nil {
		logger.WithError(err).Fatal("Failed to parse listings file")
	}

	dsn := cfg.Database.Path
	if cfg.Database.Driver == "mysql" {
		dsn = cfg.Database.DSN
	}
	db, err := database.Open(cfg.Database.Driver, dsn, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}
	if err := db.UpsertProperties(context.Background(), listings); err != nil {
		logger.WithError(err).Fatal("Failed to upsert listings")
	}

	logger.WithField("count", len(listings)).Info("Seeded listings")
}
