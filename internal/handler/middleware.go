package handler

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const (
	headerAdminKey     = "X-Admin-Key"
	unauthorizedReason = "Unauthorized access"
)

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = statusFor(err)
	}

	log.WithFields(log.Fields{
		"component": "http",
		"method":    c.Method(),
		"path":      c.Path(),
		"status":    status,
		"latency":   time.Since(start),
	}).Info("request handled")
	return err
}

// requireAdmin accepts the key either as X-Admin-Key or as a bearer token.
// When no admin key is configured every request is rejected.
func (h *HTTPHandler) requireAdmin(c *fiber.Ctx) error {
	key := c.Get(headerAdminKey)
	if key == "" {
		key = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	}

	if h.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.adminKey)) != 1 {
		log.WithFields(log.Fields{
			"component": "http",
			"path":      c.Path(),
			"ip":        c.IP(),
		}).Warn("rejected admin request")

		reason := unauthorizedReason
		return c.Status(fiber.StatusUnauthorized).JSON(apiResponse{
			Error:   &reason,
			Message: unauthorizedReason,
		})
	}
	return c.Next()
}
