package config

import (
	"os"
	"strings"

	"EportsTech/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "EportsTech Backend",
			BodyLimit:         10 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     true,
			CaseSensitive:     true,
			EnablePrintRoutes: os.Getenv("APP_ENV") != "production",
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				code := fiber.StatusInternalServerError
				if e, ok := err.(*fiber.Error); ok {
					code = e.Code
				}
				if code >= fiber.StatusInternalServerError {
					logger.WithField("path", c.Path()).WithError(err).Error("Unhandled error")
				}
				return c.Status(code).JSON(handlerUtil.ErrorResponse{
					Error: err.Error(),
				})
			},
		})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins(),
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, If-None-Match, X-Request-ID, X-Sync-Key",
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		ExposeHeaders: "ETag, X-Request-ID",
	}))

	return app
}

func corsOrigins() string {
	origins := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if origins == "" {
		return "*"
	}
	return origins
}
