package api

import (
	"github.com/railreport/railreport/pkg/api/routes"
	"github.com/railreport/railreport/pkg/database"
	"github.com/railreport/railreport/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the performance report API endpoints",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					routes.SetupCache()

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
