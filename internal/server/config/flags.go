package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/syncmarks/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-t int      database connect/operation timeout, seconds
//	-m int      maximum total syncs (0 = unlimited)
//	-l int      daily new syncs per IP (0 = disabled)
//	-n bool     accept new syncs
//	-o bool     report the service as offline
//	-s string   operator status message
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The timeout flag is accepted as an integer in seconds and then converted
//     to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-m", "-l", "-n", "-o", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	dbConnTimeout := fs.Int("t", int(config.DBConnTimeout.Seconds()), "db connect/operation timeout (in seconds)")

	fs.IntVar(&config.MaxSyncs, "m", config.MaxSyncs, "maximum total syncs (0 = unlimited)")
	fs.IntVar(&config.DailyNewSyncsLimit, "l", config.DailyNewSyncsLimit, "daily new syncs per IP (0 = disabled)")
	fs.BoolVar(&config.AllowNewSyncs, "n", config.AllowNewSyncs, "accept new syncs")
	fs.BoolVar(&config.StatusOffline, "o", config.StatusOffline, "report service as offline")
	fs.StringVar(&config.StatusMessage, "s", config.StatusMessage, "operator status message")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.DBConnTimeout = time.Duration(*dbConnTimeout) * time.Second
}
