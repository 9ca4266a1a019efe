package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

type Config struct {
	ProjectID    string
	SourceLocale string
	Datatype     string
	DatabaseURL  string
	WorkerCount  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	return &Config{
		ProjectID:    getEnv("PROJECT_ID", "app"),
		SourceLocale: canonicalLocale(getEnv("SOURCE_LOCALE", "en-US")),
		Datatype:     getEnv("DATATYPE", "x-objective-c"),
		DatabaseURL:  getEnv("DATABASE_URL", "postgres://localhost:5432/locstrings?sslmode=disable"),
		WorkerCount:  getEnvInt("WORKER_COUNT", 8),
	}
}

// canonicalLocale validates a BCP 47 tag and returns its canonical form,
// falling back to en-US on garbage input so extraction can still proceed.
func canonicalLocale(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		log.Warn().Str("locale", tag).Msg("Invalid source locale, falling back to en-US")
		return "en-US"
	}
	return t.String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
