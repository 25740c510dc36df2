package main

import (
	"flag"
	"folio/internal/di"
	"folio/internal/structures"
	"fmt"
	"github.com/joho/godotenv"
	"os"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the yaml config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "log to stderr in addition to log files")
	flag.Parse()

	// secrets live in .env during local development; absence is fine
	_ = godotenv.Load()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "folio: %s\n", err)
		os.Exit(1)
	}
}
