package handlers

import (
	"musea/internal/app"
	artifactController "musea/internal/controllers/artifact"
	"musea/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type ArtifactHandler struct {
	Handler
	artifactController artifactController.ArtifactControllerInterface
}

func NewArtifactHandler(app app.App, router fiber.Router) *ArtifactHandler {
	log := logger.New("handlers").File("artifact_handler")
	return &ArtifactHandler{
		artifactController: app.Controllers.Artifact,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ArtifactHandler) Register() {
	artifacts := h.router.Group("/artifacts")
	artifacts.Get("/search", h.search)
	artifacts.Get("/condition/:condition", h.listByCondition)
	artifacts.Post("", h.create)
	artifacts.Get("", h.list)
	artifacts.Get("/:id", h.get)
	artifacts.Put("/:id", h.update)
	artifacts.Delete("/:id", h.delete)
}

func (h *ArtifactHandler) create(c *fiber.Ctx) error {
	var req artifactController.ArtifactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	artifact, err := h.artifactController.Create(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err, "Failed to create artifact")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"artifact": artifact,
	})
}

func (h *ArtifactHandler) list(c *fiber.Ctx) error {
	artifacts, err := h.artifactController.List(c.UserContext())
	if err != nil {
		return handleError(c, err, "Failed to list artifacts")
	}

	return c.JSON(fiber.Map{
		"artifacts": artifacts,
	})
}

func (h *ArtifactHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	artifact, err := h.artifactController.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Failed to get artifact")
	}

	return c.JSON(fiber.Map{
		"artifact": artifact,
	})
}

func (h *ArtifactHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req artifactController.ArtifactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	artifact, err := h.artifactController.Update(c.UserContext(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update artifact")
	}

	return c.JSON(fiber.Map{
		"artifact": artifact,
	})
}

func (h *ArtifactHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.artifactController.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err, "Failed to delete artifact")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *ArtifactHandler) search(c *fiber.Ctx) error {
	artifacts, err := h.artifactController.Search(c.UserContext(), c.Query("name"))
	if err != nil {
		return handleError(c, err, "Failed to search artifacts")
	}

	return c.JSON(fiber.Map{
		"artifacts": artifacts,
	})
}

func (h *ArtifactHandler) listByCondition(c *fiber.Ctx) error {
	artifacts, err := h.artifactController.ListByCondition(c.UserContext(), c.Params("condition"))
	if err != nil {
		return handleError(c, err, "Failed to list artifacts")
	}

	return c.JSON(fiber.Map{
		"artifacts": artifacts,
	})
}
