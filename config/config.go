package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr           string
	AllowedOrigins []string
	Debug          bool

	WordChoiceTimeout time.Duration
	RoundEndDelay     time.Duration
	DisconnectGrace   time.Duration
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getenvSeconds(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}

func Load() Config {
	return Config{
		Addr:              getenv("ADDR", ":5000"),
		AllowedOrigins:    strings.Split(getenv("ALLOWED_ORIGINS", "*"), ","),
		Debug:             os.Getenv("DEBUG") == "true",
		WordChoiceTimeout: getenvSeconds("WORD_CHOICE_TIMEOUT", 5*time.Second),
		RoundEndDelay:     getenvSeconds("ROUND_END_DELAY", 5*time.Second),
		DisconnectGrace:   getenvSeconds("DISCONNECT_GRACE", 15*time.Second),
	}
}
