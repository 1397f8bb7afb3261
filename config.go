package main

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all environment variables for the storefront service.
type Config struct {
	Port          string
	Env           string
	JWTSecret     string
	AdminEmails   []string
	RedisURL      string
	AWSRegion     string
	AWSEndpoint   string
	S3Endpoint    string
	S3Bucket      string
	ProductsTable string
	SettingsTable string
}

// LoadConfig reads environment variables into a Config and validates the
// required ones. Defaults suit local development against LocalStack.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		Env:           getenv("APP_ENV", "development"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisURL:      getenv("REDIS_URL", "redis://localhost:6379"),
		AWSRegion:     getenv("AWS_REGION", "us-east-1"),
		AWSEndpoint:   os.Getenv("AWS_ENDPOINT"),
		S3Endpoint:    os.Getenv("AWS_S3_ENDPOINT"),
		S3Bucket:      getenv("AWS_S3_BUCKET", "product-images"),
		ProductsTable: getenv("DDB_TABLE_PRODUCTS", "Products"),
		SettingsTable: getenv("DDB_TABLE_SETTINGS", "Settings"),
	}
	if cfg.S3Endpoint == "" {
		cfg.S3Endpoint = cfg.AWSEndpoint
	}

	for _, e := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if e = strings.TrimSpace(e); e != "" {
			cfg.AdminEmails = append(cfg.AdminEmails, e)
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.AdminEmails) == 0 {
		return nil, fmt.Errorf("ADMIN_EMAILS is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
