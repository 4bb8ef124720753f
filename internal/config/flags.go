package config

import (
	"flag"
	"os"
	"time"

	"talentbase/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the SQLite database file
//	-b string   directory for template backup files
//	-a string   base URL of the sync remote
//	-t string   access token for the sync remote
//	-i int      online check interval in seconds
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// components pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-a", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.BackupDir, "b", cfg.BackupDir, "directory for template backups")
	fs.StringVar(&cfg.RemoteEndpoint, "a", cfg.RemoteEndpoint, "base URL of the sync remote")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "access token for the sync remote")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
