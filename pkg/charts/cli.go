package charts

import (
	"os"

	"github.com/railreport/railreport/pkg/database"
	"github.com/railreport/railreport/pkg/otp"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.mongodb.org/mongo-driver/bson"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "charts",
		Usage: "Render the performance report charts",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Render the report chart set from the database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Value: ".",
						Usage: "Directory the chart PNGs are written to",
					},
					&cli.StringFlag{
						Name:  "service-line",
						Usage: "Restrict the report to one service line",
					},
					&cli.IntFlag{
						Name:  "year",
						Usage: "Restrict the report to one fiscal year",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					outputDirectory := c.String("output")
					if err := os.MkdirAll(outputDirectory, 0755); err != nil {
						return err
					}

					arrivals, err := otp.LoadStationArrivals(bson.M{})
					if err != nil {
						return err
					}

					if serviceLine := c.String("service-line"); serviceLine != "" {
						arrivals, err = otp.ByServiceLine(arrivals, serviceLine, c.Int("year"))
					} else {
						arrivals, err = otp.FilterStationArrivals(arrivals, otp.FilterOptions{Year: c.Int("year")})
					}
					if err != nil {
						return err
					}

					log.Info().
						Int("records", len(arrivals)).
						Str("output", outputDirectory).
						Msg("Generating report charts")

					return GenerateReport(arrivals, outputDirectory)
				},
			},
		},
	}
}
