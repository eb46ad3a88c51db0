package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/railreport/railreport/pkg/database"
	"github.com/railreport/railreport/pkg/otp"
	"github.com/railreport/railreport/pkg/stats/calculator"
	"github.com/railreport/railreport/pkg/stats/descriptive"
	"github.com/urfave/cli/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Calculate summary statistics over the imported records",
		Subcommands: []*cli.Command{
			{
				Name:  "summary",
				Usage: "Calculate the system-wide summary and store it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "group-by",
						Usage: "Group the summary: service_line, station, state, region, division or period",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					arrivals, err := otp.LoadStationArrivals(bson.M{})
					if err != nil {
						return err
					}

					fields := []string{calculator.FieldTotalDetraining, calculator.FieldLateDetraining, calculator.FieldAvgMinLate}
					functions := []calculator.AggFunc{calculator.AggSum, calculator.AggMean, calculator.AggStd}

					var result any
					statsType := "summary"

					if groupBy := c.String("group-by"); groupBy != "" {
						keyFn, err := groupKeyFunc(groupBy)
						if err != nil {
							return err
						}

						var totalDetraining float64
						for _, arrival := range arrivals {
							totalDetraining += arrival.TotalDetrainingCustomers
						}

						result, err = calculator.ComputeSummaryByGroup(arrivals, keyFn, fields, functions, calculator.GroupOptions{
							TotalArrivals:   len(arrivals),
							TotalDetraining: totalDetraining,
						})
						if err != nil {
							return err
						}

						statsType = "summary/" + groupBy
					} else {
						result, err = calculator.ComputeSummary(arrivals, fields, functions, calculator.DefaultPrecision)
						if err != nil {
							return err
						}
					}

					if err := storeRecordStats(statsType, result); err != nil {
						return err
					}

					encoded, _ := json.MarshalIndent(result, "", "  ")
					fmt.Println(string(encoded))

					return nil
				},
			},
			{
				Name:  "describe",
				Usage: "Print descriptive statistics for a numeric field",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "field",
						Value: calculator.FieldAvgMinLate,
						Usage: "Name of the numeric field to describe",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					arrivals, err := otp.LoadStationArrivals(bson.M{})
					if err != nil {
						return err
					}

					values, err := calculator.FieldValues(arrivals, c.String("field"))
					if err != nil {
						return err
					}

					description, err := descriptive.Describe(c.String("field"), values)
					if err != nil {
						return err
					}

					encoded, _ := json.MarshalIndent(description, "", "  ")
					fmt.Println(string(encoded))

					return nil
				},
			},
		},
	}
}

func groupKeyFunc(groupBy string) (calculator.GroupKeyFunc, error) {
	switch groupBy {
	case "service_line":
		return calculator.GroupByServiceLine, nil
	case "station":
		return calculator.GroupByStation, nil
	case "state":
		return calculator.GroupByState, nil
	case "region":
		return calculator.GroupByRegion, nil
	case "division":
		return calculator.GroupByDivision, nil
	case "period":
		return calculator.GroupByFiscalPeriod, nil
	default:
		return nil, fmt.Errorf("unknown grouping %q", groupBy)
	}
}

// storeRecordStats upserts the latest calculated statistics document.
func storeRecordStats(statsType string, result any) error {
	recordStats := calculator.RecordStatsData{
		Type:      statsType,
		Stats:     result,
		Timestamp: time.Now(),
	}

	collection := database.GetCollection("record_stats")
	_, err := collection.UpdateOne(context.Background(),
		bson.M{"type": statsType},
		bson.M{"$set": recordStats},
		options.Update().SetUpsert(true))

	return err
}
