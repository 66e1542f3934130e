package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

// NewServer builds the fiber application with the shared error handler and
// middleware. Routes are added separately through RegisterRoutes.
func NewServer(views fiber.Views, timeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:                 views,
		ErrorHandler:          errorHandler,
		ReadTimeout:           timeout,
		WriteTimeout:          timeout,
		DisableStartupMessage: true,
	})

	app.Use(requestLogger)
	app.Use(recover.New())
	return app
}

func statusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		log.WithFields(log.Fields{
			"component": "server",
			"method":    c.Method(),
			"path":      c.Path(),
			"error":     err,
		}).Error("request failed")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(http.StatusText(code))
}
