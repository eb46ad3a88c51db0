package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railreport/railreport/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/report")

	group.Get("version", routes.APIVersion)

	routes.StatsRouter(group.Group("/stats"))

	routes.StationsRouter(group.Group("/stations"))

	routes.ChartsRouter(group.Group("/charts"))

	return webApp.Listen(listen)
}
