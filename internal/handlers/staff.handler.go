package handlers

import (
	"musea/internal/app"
	staffController "musea/internal/controllers/staff"
	"musea/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type StaffHandler struct {
	Handler
	staffController staffController.StaffControllerInterface
}

func NewStaffHandler(app app.App, router fiber.Router) *StaffHandler {
	log := logger.New("handlers").File("staff_handler")
	return &StaffHandler{
		staffController: app.Controllers.Staff,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *StaffHandler) Register() {
	staff := h.router.Group("/staff")
	staff.Post("", h.create)
	staff.Get("", h.list)
	staff.Get("/:id", h.get)
	staff.Put("/:id", h.update)
	staff.Delete("/:id", h.delete)
}

func (h *StaffHandler) create(c *fiber.Ctx) error {
	var req staffController.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	staff, err := h.staffController.Create(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err, "Failed to create staff")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"staff": staff,
	})
}

func (h *StaffHandler) list(c *fiber.Ctx) error {
	staff, err := h.staffController.List(c.UserContext())
	if err != nil {
		return handleError(c, err, "Failed to list staff")
	}

	return c.JSON(fiber.Map{
		"staff": staff,
	})
}

func (h *StaffHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	staff, err := h.staffController.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Failed to get staff")
	}

	return c.JSON(fiber.Map{
		"staff": staff,
	})
}

func (h *StaffHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req staffController.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	staff, err := h.staffController.Update(c.UserContext(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update staff")
	}

	return c.JSON(fiber.Map{
		"staff": staff,
	})
}

func (h *StaffHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.staffController.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err, "Failed to delete staff")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
