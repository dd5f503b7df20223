package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port               string
	RateLimitPerSecond int
	RateLimitBurst     int
	ClockRefresh       time.Duration
	SeedDemoData       bool
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:               port,
		RateLimitPerSecond: readInt("RATE_LIMIT_PER_SECOND", 5),
		RateLimitBurst:     readInt("RATE_LIMIT_BURST", 10),
		ClockRefresh:       readDurationSeconds("CLOCK_REFRESH_SECONDS", 60),
		SeedDemoData:       readBool("SEED_DEMO_DATA", false),
	}
}

func readDurationSeconds(key string, fallback int) time.Duration {
	value := readInt(key, fallback)
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func readBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
