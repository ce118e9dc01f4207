package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/sessionview/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   base URL of the authentication service
//	-s string   path of the local session database
//	-l string   log level
//
// Only these flags are considered (see flagx.FilterArgs), so -c/-config and
// anything else on the command line is left to other parsers.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the authentication service")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the local session database (:memory: for a throwaway session)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
