// Package config loads runtime configuration for the sessionview CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally seeded from a .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the authentication service
//	-s string   path of the local session database (:memory: keeps the
//	            session in the process only)
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	SESSIONVIEW_SERVER_URL, SESSIONVIEW_STORAGE_PATH, SESSIONVIEW_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "storage_path": "session.db",
//	  "log_level": "warn",
//	  "request_timeout": "0s"
//	}
package config
