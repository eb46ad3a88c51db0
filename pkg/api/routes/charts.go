package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/railreport/railreport/pkg/charts"
	"github.com/railreport/railreport/pkg/otp"
	"go.mongodb.org/mongo-driver/bson"
)

var chartKinds = map[string]bool{
	"bar":       true,
	"box":       true,
	"histogram": true,
	"line":      true,
}

func ChartsRouter(router fiber.Router) {
	router.Get("/:kind", getChart)
}

func getChart(c *fiber.Ctx) error {
	kind := c.Params("kind")

	if !chartKinds[kind] {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": fmt.Sprintf("Unknown chart kind %s", kind),
		})
	}

	image, err := cachedResult("charts/"+kind, func() (string, error) {
		arrivals, err := otp.LoadStationArrivals(bson.M{})
		if err != nil {
			return "", err
		}

		chart, err := charts.ReportChart(kind, arrivals)
		if err != nil {
			return "", err
		}

		png, err := charts.PNGBytes(chart)
		if err != nil {
			return "", err
		}

		return string(png), nil
	})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send([]byte(image))
}
