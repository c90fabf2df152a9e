package database

import (
	"Tecnofit/internal/config"
	"Tecnofit/internal/models"
	"Tecnofit/internal/services"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"os"
)

func SetupDatabase(cfg *config.Configuration, logService services.LogService) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logService.GormLogger(cfg.Database.LogSQL),
	})
	if err != nil {
		return nil, err
	}
	if cfg.Database.Migrate {
		err = db.AutoMigrate(models.User{}, models.Training{}, models.Exercise{})
		if err != nil {
			return nil, err
		}
	}
	return db, nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = "tecnofit.db"
		}
		return sqlite.Open(path), nil
	case "postgres":
		dsn, err := postgresDSN(cfg.EnvFile)
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// postgresDSN builds the DSN from the DB_* environment, loading envFile (or
// .env) first when it exists. Variables already set win over the file.
func postgresDSN(envFile string) (string, error) {
	var err error
	if envFile != "" {
		err = godotenv.Load(envFile)
	} else {
		err = godotenv.Load()
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if envVariable == "DB_SSLMODE" {
			if os.Getenv(envVariable) == "" {
				if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
					return "", err
				}
			}
			continue
		}
		if os.Getenv(envVariable) == "" {
			return "", fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB, logService services.LogService) {
	sqlDB, err := db.DB()
	if err != nil {
		logService.Log.Errorf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logService.Log.Errorf("Error closing database: %v", err)
	}
}
