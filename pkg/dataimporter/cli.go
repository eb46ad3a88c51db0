package dataimporter

import (
	"fmt"
	"os"

	"github.com/railreport/railreport/pkg/database"
	"github.com/railreport/railreport/pkg/dataimporter/formats/fraotp"
	"github.com/railreport/railreport/pkg/dataimporter/manager"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Download & convert the quarterly performance datasets",
		Subcommands: []*cli.Command{
			{
				Name:  "dataset",
				Usage: "Import a dataset",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "id",
						Value: "us-fra-otp-quarterly",
						Usage: "ID of the dataset",
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "Import from a local file instead of the registered source",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					dataset, err := manager.GetDataset(c.String("id"))
					if err != nil {
						return err
					}

					return manager.ImportDataset(dataset, c.String("file"))
				},
			},
			{
				Name:  "check-column",
				Usage: "Report the non-numeric values found in a numeric CSV column",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Path of the CSV file to scan",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "column",
						Usage:    "Name of the column to scan",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					file, err := os.Open(c.String("file"))
					if err != nil {
						return err
					}
					defer file.Close()

					values, err := fraotp.FindNonNumericValues(file, c.String("column"))
					if err != nil {
						return err
					}

					for _, value := range values {
						fmt.Printf("%q\n", value)
					}

					return nil
				},
			},
		},
	}
}
