package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB     *gorm.DB
	Driver string
}

// Init connects with the given driver, runs migrations and exits the
// process on failure. Use InitWithFallback when a secondary connection
// should be tried first.
func Init(driver, dsn string) *Database {
	db, err := open(driver, dsn)
	if err != nil {
		log.Fatalf("database connection failed (%s): %v", driver, err)
	}
	migrate(db, driver)
	return &Database{DB: db, Driver: driver}
}

// InitWithFallback tries the primary connection and falls back to the
// secondary when the primary is unreachable. With no usable fallback it
// ends up on an in-memory sqlite database so the service still boots.
func InitWithFallback(primaryDriver, primaryDSN, fallbackDriver, fallbackDSN string) *Database {
	if primaryDriver != "" {
		db, err := open(primaryDriver, primaryDSN)
		if err == nil {
			migrate(db, primaryDriver)
			return &Database{DB: db, Driver: primaryDriver}
		}
		log.Printf("primary database unavailable (%s): %v", primaryDriver, err)
	}

	if fallbackDriver != "" {
		db, err := open(fallbackDriver, fallbackDSN)
		if err == nil {
			log.Printf("running on fallback database (%s)", fallbackDriver)
			migrate(db, fallbackDriver)
			return &Database{DB: db, Driver: fallbackDriver}
		}
		log.Printf("fallback database unavailable (%s): %v", fallbackDriver, err)
	}

	log.Println("no database reachable, using in-memory sqlite")
	return Init("sqlite", ":memory:")
}

func open(driver, dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch driver {
	case "postgres":
		return openPostgres(dsn, config)
	case "mysql":
		return openMySQL(dsn, config)
	case "sqlite":
		return openSQLite(dsn, config)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func openPostgres(dsn string, config *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is not configured")
	}
	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}
	return db, nil
}

func openMySQL(dsn string, config *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql DSN is not configured")
	}
	db, err := gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("mysql connection failed: %w", err)
	}
	return db, nil
}

func openSQLite(dsn string, config *gorm.Config) (*gorm.DB, error) {
	if dsn != ":memory:" {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("sqlite directory creation failed: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection failed: %w", err)
	}
	return db, nil
}

func migrate(db *gorm.DB, driver string) {
	err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Vote{})
	if err != nil {
		log.Printf("migration failed: %v", err)
	} else {
		log.Printf("%s database migrated", driver)
	}
}

func (d *Database) GetInfo() map[string]string {
	return map[string]string{"driver": d.Driver}
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
