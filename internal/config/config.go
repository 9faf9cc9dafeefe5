package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	SheetURL     string
	OrderAPIURL  string
	LogFile      string
	FetchTimeout time.Duration

	// Store info shown on the profile/stores screen.
	StoreTitle string
	StoreHours string
	StorePhone string
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		SheetURL:     os.Getenv("SHEET_URL"),
		OrderAPIURL:  getenv("ORDER_API_URL", "http://localhost:8090"),
		LogFile:      getenv("LOG_FILE", "./tekbir.log"),
		FetchTimeout: 15 * time.Second,
		StoreTitle:   getenv("STORE_TITLE", "Москва, Мельникова 2"),
		StoreHours:   getenv("STORE_HOURS", "11:00 — 20:00"),
		StorePhone:   getenv("STORE_PHONE", "+7 (967) 013-13-00"),
	}
	if t := os.Getenv("FETCH_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.FetchTimeout = d
		}
	}
	log.Printf("[config] PORT=%s SHEET_URL=%s ORDER_API_URL=%s LOG_FILE=%s",
		cfg.Port, cfg.SheetURL, cfg.OrderAPIURL, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
