package routes

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/railreport/railreport/pkg/otp"
	"github.com/railreport/railreport/pkg/stats/calculator"
	"go.mongodb.org/mongo-driver/bson"
)

// Aggregations included in every summary response.
var (
	summaryFields = []string{
		calculator.FieldTotalDetraining,
		calculator.FieldLateDetraining,
		calculator.FieldAvgMinLate,
	}
	summaryFunctions = []calculator.AggFunc{
		calculator.AggSum, calculator.AggMean, calculator.AggStd,
	}
)

func StatsRouter(router fiber.Router) {
	router.Get("/", getSystemStats)
	router.Get("/service_lines", getServiceLineStats)
	router.Get("/periods", getPeriodStats)
}

func getSystemStats(c *fiber.Ctx) error {
	return sendCachedJSON(c, "stats/system", func() (any, error) {
		arrivals, err := otp.LoadStationArrivals(bson.M{})
		if err != nil {
			return nil, err
		}

		return calculator.ComputeSummary(arrivals, summaryFields, summaryFunctions, calculator.DefaultPrecision)
	})
}

func getServiceLineStats(c *fiber.Ctx) error {
	return sendCachedJSON(c, "stats/service_lines", func() (any, error) {
		arrivals, err := otp.LoadStationArrivals(bson.M{})
		if err != nil {
			return nil, err
		}

		var totalDetraining float64
		for _, arrival := range arrivals {
			totalDetraining += arrival.TotalDetrainingCustomers
		}

		return calculator.ComputeSummaryByGroup(arrivals, calculator.GroupByServiceLine,
			summaryFields, summaryFunctions,
			calculator.GroupOptions{
				TotalArrivals:   len(arrivals),
				TotalDetraining: totalDetraining,
			})
	})
}

func getPeriodStats(c *fiber.Ctx) error {
	return sendCachedJSON(c, "stats/periods", func() (any, error) {
		arrivals, err := otp.LoadStationArrivals(bson.M{})
		if err != nil {
			return nil, err
		}

		return calculator.QuarterlyAvgMinLate(arrivals, calculator.DefaultPrecision), nil
	})
}

// sendCachedJSON serves the cached JSON document for key, computing it
// on a miss.
func sendCachedJSON(c *fiber.Ctx, key string, compute func() (any, error)) error {
	document, err := cachedResult(key, func() (string, error) {
		result, err := compute()
		if err != nil {
			return "", err
		}

		encoded, err := json.Marshal(result)
		if err != nil {
			return "", err
		}

		return string(encoded), nil
	})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(document)
}
