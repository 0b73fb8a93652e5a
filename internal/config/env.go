package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAddr is the listen address when IMTGO_ADDR is unset
const DefaultAddr = ":8080"

// ServerConfig holds settings for the HTTP API
type ServerConfig struct {
	Addr        string
	RulesFile   string
	CORSOrigins []string
}

// ServerFromEnv reads server settings from the environment, loading envFile
// first when it exists. Variables already set take precedence over the file.
func ServerFromEnv(envFile string) (ServerConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return ServerConfig{}, err
		}
	}

	cfg := ServerConfig{
		Addr:      getenv("IMTGO_ADDR", DefaultAddr),
		RulesFile: os.Getenv("IMTGO_RULES_FILE"),
	}
	for _, origin := range strings.Split(getenv("IMTGO_CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
