package handler

import (
	"errors"
	"fmt"

	"github.com/amaumene/escort/internal/config"
	"github.com/amaumene/escort/internal/domain"
	"github.com/amaumene/escort/internal/service"
	"github.com/amaumene/escort/internal/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	log "github.com/sirupsen/logrus"
)

const (
	messageSuccess = "success"
	messageFailed  = "failed"
)

type apiResponse struct {
	Error   *string     `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type renameRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type deleteRequest struct {
	ID string `json:"id"`
}

type HTTPHandler struct {
	adminKey  string
	catalog   *service.CatalogService
	locations *service.LocationService
}

func NewHTTPHandler(cfg *config.Config, catalog *service.CatalogService, locations *service.LocationService) *HTTPHandler {
	return &HTTPHandler{
		adminKey:  cfg.AdminKey,
		catalog:   catalog,
		locations: locations,
	}
}

func (h *HTTPHandler) RegisterRoutes(app *fiber.App) {
	app.Use("/static", filesystem.New(filesystem.Config{Root: views.Static()}))

	app.All("/", h.handleIndex)
	app.Get("/profile/:id", h.handleProfile)
	app.Get("/health", h.handleHealth)

	app.Get("/api/locations", h.handleListLocations)
	app.Post("/api/locations", h.requireAdmin, h.handleCreateLocation)
	app.Put("/api/locations", h.requireAdmin, h.handleRenameLocation)
	app.Delete("/api/locations", h.requireAdmin, h.handleDeleteLocation)
}

// handleIndex serves escort/index for any method. The optional category
// query parameter selects a tab; everything else on the request is ignored.
func (h *HTTPHandler) handleIndex(c *fiber.Ctx) error {
	page, err := h.catalog.IndexPage(c.UserContext(), c.Query("category"))
	if err != nil {
		return fmt.Errorf("building index page: %w", err)
	}
	return c.Status(fiber.StatusOK).Render(views.Index, page)
}

func (h *HTTPHandler) handleProfile(c *fiber.Ctx) error {
	page, err := h.catalog.ProfilePage(c.UserContext(), c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("building profile page: %w", err)
	}
	return c.Render(views.Profile, page)
}

func (h *HTTPHandler) handleHealth(c *fiber.Ctx) error {
	c.Status(fiber.StatusOK)
	return nil
}

func (h *HTTPHandler) handleListLocations(c *fiber.Ctx) error {
	locations, err := h.locations.List(c.UserContext())
	if err != nil {
		return h.writeFailure(c, err)
	}
	return h.writeSuccess(c, locations)
}

func (h *HTTPHandler) handleCreateLocation(c *fiber.Ctx) error {
	var input domain.Location
	if err := c.BodyParser(&input); err != nil {
		return h.writeFailure(c, fmt.Errorf("parsing body: %v: %w", err, domain.ErrInvalidInput))
	}

	location, err := h.locations.Create(c.UserContext(), input)
	if err != nil {
		return h.writeFailure(c, err)
	}
	return h.writeSuccess(c, location)
}

func (h *HTTPHandler) handleRenameLocation(c *fiber.Ctx) error {
	var req renameRequest
	if err := c.BodyParser(&req); err != nil {
		return h.writeFailure(c, fmt.Errorf("parsing body: %v: %w", err, domain.ErrInvalidInput))
	}

	location, err := h.locations.Rename(c.UserContext(), req.ID, req.Name)
	if err != nil {
		return h.writeFailure(c, err)
	}
	return h.writeSuccess(c, location)
}

func (h *HTTPHandler) handleDeleteLocation(c *fiber.Ctx) error {
	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return h.writeFailure(c, fmt.Errorf("parsing body: %v: %w", err, domain.ErrInvalidInput))
	}

	if err := h.locations.Delete(c.UserContext(), req.ID); err != nil {
		return h.writeFailure(c, err)
	}
	return h.writeSuccess(c, nil)
}

func (h *HTTPHandler) writeSuccess(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(apiResponse{
		Message: messageSuccess,
		Data:    data,
	})
}

func (h *HTTPHandler) writeFailure(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateKey):
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		log.WithFields(log.Fields{
			"component": "http",
			"path":      c.Path(),
			"error":     err,
		}).Error("location request failed")
	}

	reason := err.Error()
	return c.Status(status).JSON(apiResponse{
		Error:   &reason,
		Message: messageFailed,
	})
}
