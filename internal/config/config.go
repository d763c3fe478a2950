package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DBDriver    string
	DatabaseDSN string
	SessionTTL  time.Duration
}

func Load() Config {
	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		DBDriver: getEnv("DB_DRIVER", "mysql"),
		// clientFoundRows makes conditional updates report matched rows,
		// which the ownership checks rely on.
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/dailydiet?parseTime=true&clientFoundRows=true"),
		SessionTTL:  7 * 24 * time.Hour,
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid SESSION_TTL, using default", "value", v)
		} else {
			cfg.SessionTTL = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
