package routes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/railreport/railreport/pkg/otp"
	"github.com/railreport/railreport/pkg/stats/calculator"
	"go.mongodb.org/mongo-driver/bson"
)

func StationsRouter(router fiber.Router) {
	router.Get("/busiest", getBusiestStations)
	router.Get("/:code", getStation)
}

func getBusiestStations(c *fiber.Ctx) error {
	n := c.QueryInt("n", 10)
	geoUnit := c.Query("geo")
	year := c.QueryInt("year")

	quarters, err := parseQuarters(c.Query("quarters"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if len(quarters) > 0 && year == 0 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "quarters can only be filtered alongside a year",
		})
	}

	key := fmt.Sprintf("stations/busiest/%d/%s/%d/%s", n, geoUnit, year, c.Query("quarters"))

	return sendCachedJSON(c, key, func() (any, error) {
		arrivals, err := otp.LoadStationArrivals(bson.M{})
		if err != nil {
			return nil, err
		}

		return calculator.BusiestStations(arrivals, n, geoUnit, otp.FilterOptions{
			Year:     year,
			Quarters: quarters,
		})
	})
}

// parseQuarters parses a comma separated quarter list, e.g. "1,3".
func parseQuarters(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	var quarters []int
	for _, part := range strings.Split(raw, ",") {
		quarter, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || quarter < 1 || quarter > 4 {
			return nil, fmt.Errorf("invalid fiscal quarter %q", part)
		}

		quarters = append(quarters, quarter)
	}

	return quarters, nil
}

func getStation(c *fiber.Ctx) error {
	code := c.Params("code")

	arrivals, err := otp.LoadStationArrivals(bson.M{"arrivalstationcode": code})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if len(arrivals) == 0 {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": fmt.Sprintf("Could not find station %s", code),
		})
	}

	summary, err := calculator.ComputeSummary(arrivals, summaryFields, summaryFunctions, calculator.DefaultPrecision)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	summary.Group = code

	return c.JSON(fiber.Map{
		"station": fiber.Map{
			"code":  code,
			"name":  arrivals[0].StationName,
			"city":  arrivals[0].City,
			"state": arrivals[0].State,
		},
		"summary": summary,
	})
}
