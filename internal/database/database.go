package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"jpsrealtor/cma/internal/models"
)

type Database struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// Open connects to driver ("sqlite" or "mysql"). For sqlite dsn is the file
// path, ":memory:" included.
func Open(driver, dsn string, log *logrus.Logger) (*Database, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		if !strings.Contains(dsn, ":memory:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if driver == "sqlite" && strings.Contains(dsn, ":memory:") {
		// an in-memory database only lives as long as its one connection
		sqlDB.SetMaxOpenConns(1)
	}

	if log == nil {
		log = logrus.New()
	}
	return &Database{db: db, logger: log}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

// GetPropertyByKey returns nil, nil when no listing has key.
func (d *Database) GetPropertyByKey(ctx context.Context, key string) (*models.Property, error) {
	return d.first(ctx, "listing_key = ?", key)
}

// GetPropertyBySlug returns nil, nil when no listing has slug.
func (d *Database) GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error) {
	return d.first(ctx, "slug = ?", slug)
}

func (d *Database) first(ctx context.Context, query string, arg string) (*models.Property, error) {
	var p models.Property
	err := d.db.WithContext(ctx).Where(query, arg).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query property: %w", err)
	}
	return &p, nil
}

// SearchComparables runs the comparable query described by filter, active
// listings first and then newest on-market date.
func (d *Database) SearchComparables(ctx context.Context, filter models.ComparableFilter) ([]models.Property, error) {
	q := d.db.WithContext(ctx).Model(&models.Property{})

	if filter.PropertyType != "" {
		q = q.Where("property_type = ?", filter.PropertyType)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("standard_status IN ?", filter.Statuses)
	}
	if filter.City != "" {
		q = q.Where("LOWER(city) LIKE ? ESCAPE '!'", likePattern(filter.City))
	}
	if filter.Subdivision != "" {
		q = q.Where("LOWER(subdivision_name) LIKE ? ESCAPE '!'", likePattern(filter.Subdivision))
	}
	if r := filter.Bedrooms; r != nil {
		q = q.Where("bedrooms_total BETWEEN ? AND ?", r.Min, r.Max)
	}
	if r := filter.Bathrooms; r != nil {
		q = q.Where("bathrooms_total BETWEEN ? AND ?", r.Min, r.Max)
	}
	if r := filter.LivingArea; r != nil {
		q = q.Where("living_area BETWEEN ? AND ?", r.Min, r.Max)
	}
	if filter.RequirePool {
		q = q.Where("pool_yn = ?", true)
	}
	if filter.RequireSpa {
		q = q.Where("spa_yn = ?", true)
	}
	if b := filter.Bounds; b != nil {
		q = q.Where("latitude BETWEEN ? AND ?", b.Min.Lat(), b.Max.Lat()).
			Where("longitude BETWEEN ? AND ?", b.Min.Lon(), b.Max.Lon())
	}
	if len(filter.ExcludeKeys) > 0 {
		q = q.Where("listing_key NOT IN ?", filter.ExcludeKeys)
	}
	if len(filter.ExcludeListingIDs) > 0 {
		q = q.Where("(listing_id IS NULL OR listing_id NOT IN ?)", filter.ExcludeListingIDs)
	}

	q = q.Order(activeFirst).
		Order("on_market_date IS NULL").
		Order("on_market_date DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var properties []models.Property
	if err := q.Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to query comparables: %w", err)
	}

	d.logger.WithFields(logrus.Fields{
		"statuses": filter.Statuses,
		"city":     filter.City,
		"results":  len(properties),
	}).Debug("Comparable query finished")

	return properties, nil
}

var activeFirst = fmt.Sprintf("CASE WHEN standard_status = '%s' THEN 0 ELSE 1 END", models.StatusActive)

// likeEscaper escapes LIKE wildcards with '!', which needs no quoting in
// either sqlite or mysql string literals.
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// likePattern builds a case-insensitive substring match for s. Wildcards in
// s match literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// UpsertProperties inserts properties, updating existing rows matched by listing key.
func (d *Database) UpsertProperties(ctx context.Context, properties []*models.Property) error {
	if len(properties) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "listing_key"}},
			UpdateAll: true,
		}).CreateInBatches(properties, 100).Error
		if err != nil {
			return fmt.Errorf("failed to upsert properties: %w", err)
		}
		return nil
	})
}
