// Package handler implements the HTTP surface on top of fiber.
//
// This package provides:
// - /: the listing index, rendered from escort/index
// - /profile/:id: a single profile, rendered from escort/profile
// - /api/locations: JSON list plus admin-only create, rename and delete
// - /health: health check endpoint
// - /static: embedded assets
//
// Template and other unexpected errors flow to a single fiber error handler.
package handler
