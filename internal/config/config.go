package config

import (
	"os"
	"strconv"
	"time"
)

// Config is everything the server reads from the environment. A .env
// file, if present, is loaded into the environment by main before this
// is called.
type Config struct {
	Addr         string
	TickInterval time.Duration
	DatabaseURL  string
	ThemesFile   string
}

const defaultTickMS = 3000

func Load() Config {
	return Config{
		Addr:         getenv("ADDR", ":8080"),
		TickInterval: time.Duration(getenvInt("TICK_MS", defaultTickMS)) * time.Millisecond,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ThemesFile:   os.Getenv("THEMES_FILE"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
