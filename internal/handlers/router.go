package handlers

import (
	"errors"

	"musea/internal/app"
	"musea/internal/handlers/middleware"
	"musea/internal/services"
	"musea/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewMaintenanceHandler(*app, api).Register()
	NewArtifactHandler(*app, api).Register()
	NewStaffHandler(*app, api).Register()
	NewExhibitionHandler(*app, api).Register()
	NewFeedbackHandler(*app, api).Register()

	return nil
}

// handleError maps the service error taxonomy onto HTTP statuses. Unknown
// errors respond with the fallback message so persistence details never leak.
func handleError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fallback,
		})
	}
}

// parseIDParam returns a fiber.Error so the server's error handler renders
// the 400 response.
func parseIDParam(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
