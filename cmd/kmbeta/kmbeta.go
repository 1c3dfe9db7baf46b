package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/kmbeta/kmbeta/pkg/query"

	_ "time/tzdata"
)

func main() {
	godotenv.Load()

	// logs go to stderr so table output can be piped cleanly
	if os.Getenv("KMBETA_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("KMBETA_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "kmbeta",
		Description: "Route & live arrival lookup for the KMB open-data feed",

		Commands: query.RegisterCLI(),
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
