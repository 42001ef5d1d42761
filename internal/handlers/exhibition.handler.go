package handlers

import (
	"musea/internal/app"
	exhibitionController "musea/internal/controllers/exhibition"
	"musea/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type ExhibitionHandler struct {
	Handler
	exhibitionController exhibitionController.ExhibitionControllerInterface
}

func NewExhibitionHandler(app app.App, router fiber.Router) *ExhibitionHandler {
	log := logger.New("handlers").File("exhibition_handler")
	return &ExhibitionHandler{
		exhibitionController: app.Controllers.Exhibition,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ExhibitionHandler) Register() {
	exhibitions := h.router.Group("/exhibitions")
	exhibitions.Get("/active", h.listActiveOn)
	exhibitions.Post("", h.create)
	exhibitions.Get("", h.list)
	exhibitions.Get("/:id", h.get)
	exhibitions.Put("/:id", h.update)
	exhibitions.Delete("/:id", h.delete)
	exhibitions.Put("/:id/artifacts", h.setArtifacts)
}

func (h *ExhibitionHandler) create(c *fiber.Ctx) error {
	var req exhibitionController.ExhibitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	exhibition, err := h.exhibitionController.Create(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err, "Failed to create exhibition")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"exhibition": exhibition,
	})
}

func (h *ExhibitionHandler) list(c *fiber.Ctx) error {
	exhibitions, err := h.exhibitionController.List(c.UserContext())
	if err != nil {
		return handleError(c, err, "Failed to list exhibitions")
	}

	return c.JSON(fiber.Map{
		"exhibitions": exhibitions,
	})
}

func (h *ExhibitionHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	exhibition, err := h.exhibitionController.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Failed to get exhibition")
	}

	return c.JSON(fiber.Map{
		"exhibition": exhibition,
	})
}

func (h *ExhibitionHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req exhibitionController.ExhibitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	exhibition, err := h.exhibitionController.Update(c.UserContext(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update exhibition")
	}

	return c.JSON(fiber.Map{
		"exhibition": exhibition,
	})
}

func (h *ExhibitionHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.exhibitionController.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err, "Failed to delete exhibition")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *ExhibitionHandler) setArtifacts(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req exhibitionController.SetArtifactsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	exhibition, err := h.exhibitionController.SetArtifacts(c.UserContext(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to set exhibition artifacts")
	}

	return c.JSON(fiber.Map{
		"exhibition": exhibition,
	})
}

func (h *ExhibitionHandler) listActiveOn(c *fiber.Ctx) error {
	exhibitions, err := h.exhibitionController.ListActiveOn(c.UserContext(), c.Query("date"))
	if err != nil {
		return handleError(c, err, "Failed to list active exhibitions")
	}

	return c.JSON(fiber.Map{
		"exhibitions": exhibitions,
	})
}
