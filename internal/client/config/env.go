package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	envServerURL   = "SESSIONVIEW_SERVER_URL"
	envStoragePath = "SESSIONVIEW_STORAGE_PATH"
	envLogLevel    = "SESSIONVIEW_LOG_LEVEL"
)

// envFile is the dotenv file consulted before reading variables. A missing
// file is fine; variables already set in the process win over the file.
var envFile = ".env"

func parseEnv(cfg *Config) {
	_ = godotenv.Load(envFile)

	if v := os.Getenv(envServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(envStoragePath); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
