package handlers

import (
	"musea/internal/app"
	feedbackController "musea/internal/controllers/feedback"
	"musea/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	Handler
	feedbackController feedbackController.FeedbackControllerInterface
}

func NewFeedbackHandler(app app.App, router fiber.Router) *FeedbackHandler {
	log := logger.New("handlers").File("feedback_handler")
	return &FeedbackHandler{
		feedbackController: app.Controllers.Feedback,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *FeedbackHandler) Register() {
	feedback := h.router.Group("/feedback")
	feedback.Get("/average", h.averageRating)
	feedback.Post("", h.create)
	feedback.Get("", h.list)
	feedback.Get("/:id", h.get)
	feedback.Delete("/:id", h.delete)
}

func (h *FeedbackHandler) create(c *fiber.Ctx) error {
	var req feedbackController.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	feedback, err := h.feedbackController.Create(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err, "Failed to create feedback")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"feedback": feedback,
	})
}

func (h *FeedbackHandler) list(c *fiber.Ctx) error {
	feedback, err := h.feedbackController.List(c.UserContext())
	if err != nil {
		return handleError(c, err, "Failed to list feedback")
	}

	return c.JSON(fiber.Map{
		"feedback": feedback,
	})
}

func (h *FeedbackHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	feedback, err := h.feedbackController.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Failed to get feedback")
	}

	return c.JSON(fiber.Map{
		"feedback": feedback,
	})
}

func (h *FeedbackHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.feedbackController.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err, "Failed to delete feedback")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *FeedbackHandler) averageRating(c *fiber.Ctx) error {
	average, err := h.feedbackController.AverageRating(c.UserContext())
	if err != nil {
		return handleError(c, err, "Failed to compute average rating")
	}

	return c.JSON(fiber.Map{
		"averageRating": average,
	})
}
