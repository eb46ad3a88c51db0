package main

import (
	"os"
	"time"

	"github.com/railreport/railreport/pkg/api"
	"github.com/railreport/railreport/pkg/charts"
	"github.com/railreport/railreport/pkg/dataimporter"
	statscli "github.com/railreport/railreport/pkg/stats/cli"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("RAILREPORT_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("RAILREPORT_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "railreport",
		Description: "Single binary of truth for railreport - imports, summarises & serves the quarterly performance data",

		Commands: []*cli.Command{
			dataimporter.RegisterCLI(),
			statscli.RegisterCLI(),
			charts.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
