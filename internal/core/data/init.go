package data

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dcrodman/objdefs/internal/core"
)

// Dialector picks the database driver configured in cfg.
func Dialector(cfg *core.Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Database.Engine) {
	case "sqlite":
		return sqlite.Open(cfg.QualifiedPath(cfg.Database.Filename)), nil
	case "postgres":
		return postgres.Open(cfg.DatabaseURL()), nil
	}
	return nil, fmt.Errorf("unsupported database engine: %q", cfg.Database.Engine)
}

// Initialize opens the database and migrates the snapshot tables.
func Initialize(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	// By default only log errors but enable full SQL query prints-to-console with debug mode
	log := logger.Default.LogMode(logger.Error)
	if debug {
		log = logger.Default.LogMode(logger.Info)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: log})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&Snapshot{}, &Identifier{}); err != nil {
		return nil, fmt.Errorf("error auto migrating db: %w", err)
	}
	return db, nil
}

// Connect opens the database described by cfg.
func Connect(cfg *core.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return Initialize(dialector, cfg.Debugging.DatabaseLoggingEnabled)
}

// Shutdown closes the connection pool behind db.
func Shutdown(db *gorm.DB) error {
	database, err := db.DB()
	if err != nil {
		return fmt.Errorf("error while getting current connection: %w", err)
	}
	if err := database.Close(); err != nil {
		return fmt.Errorf("error while closing database connection: %w", err)
	}
	return nil
}
