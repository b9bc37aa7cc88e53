// Package db opens the database, migrates the schema and seeds reference rows.
package db

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/gestioneau/internal/catalog"
	"github.com/diewo77/gestioneau/internal/config"
	"github.com/diewo77/gestioneau/internal/models"
)

// Models lists every entity in dependency order, for AutoMigrate.
func Models() []any {
	return []any{
		&models.Region{}, &models.TypeCommune{}, &models.TypeHabitation{}, &models.NatureOuvrage{},
		&models.ModeEvacExcreta{}, &models.ModeEvacuationEauUsee{}, &models.SourceApprovEp{},
		&models.Macon{}, &models.Prefabricant{}, &models.Annee{},
		&models.Province{}, &models.Commune{}, &models.Localite{}, &models.Secteur{},
		&models.Section{}, &models.Lot{}, &models.Parcelle{},
		&models.DirectionRegionale{}, &models.CentreRegroupement{}, &models.Centre{},
		&models.Prevision{}, &models.FicheSuiviOuvrage{},
	}
}

var passwordRe = regexp.MustCompile(`(password=)([^\s]+)`)

// Connect opens the PostgreSQL database, retrying while the server starts.
func Connect(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.DSN()
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), gcfg)
		if err == nil {
			break
		}
		log.Warn("retrying database connection", zap.Int("attempt", i+1), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	log.Info("database connected", zap.String("dsn", passwordRe.ReplaceAllString(dsn, `${1}***`)))
	return db, nil
}

// Migrate brings the schema up to date: SQL migrations from ./migrations
// when useSQL is set (databaseURL must then be a postgres:// URL),
// gorm AutoMigrate otherwise.
func Migrate(db *gorm.DB, useSQL bool, databaseURL string, log *zap.Logger) error {
	if useSQL {
		log.Info("running sql migrations")
		if err := RunSQLMigrations("file://migrations", databaseURL); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range Models() {
			if err := db.AutoMigrate(m); err != nil {
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}
	for _, t := range catalog.All() {
		if !db.Migrator().HasTable(t.TableName()) {
			return errors.New("missing table after migration: " + t.TableName())
		}
	}
	return nil
}

// RunSQLMigrations applies the migrations found at source.
func RunSQLMigrations(source, databaseURL string) error {
	m, err := migrate.New(source, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
