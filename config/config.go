package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/yourusername/dairy-ledger/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTRefreshSecret string
	InvoiceDir       string
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:             os.Getenv("PORT"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "dev-secret-change-me"),
		JWTRefreshSecret: getEnvOrDefault("JWT_REFRESH_SECRET", "dev-refresh-secret-change-me"),
		InvoiceDir:       getEnvOrDefault("INVOICE_DIR", "./invoices"),
	}, nil
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Migrate runs schema migration for every persisted model. Split out
// of InitDB so tests can run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BusinessProfile{},
		&models.Customer{},
		&models.DeliveryEntry{},
		&models.Payment{},
		&models.Invoice{},
		&models.InseminationRecord{},
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
