package handlers

import (
	"musea/internal/app"
	maintenanceController "musea/internal/controllers/maintenance"
	"musea/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type MaintenanceHandler struct {
	Handler
	maintenanceController maintenanceController.MaintenanceControllerInterface
}

func NewMaintenanceHandler(app app.App, router fiber.Router) *MaintenanceHandler {
	log := logger.New("handlers").File("maintenance_handler")
	return &MaintenanceHandler{
		maintenanceController: app.Controllers.Maintenance,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *MaintenanceHandler) Register() {
	maintenance := h.router.Group("/maintenance")

	// Static segments before parameterized ones
	maintenance.Post("/schedule", h.scheduleNew)
	maintenance.Get("/upcoming", h.listUpcoming)
	maintenance.Get("/stats", h.stats)
	maintenance.Get("/between", h.listBetween)
	maintenance.Get("/status/:status", h.listByStatus)
	maintenance.Get("/staff/:staffId/count", h.countByStaff)
	maintenance.Get("/staff/:staffId", h.listByStaff)
	maintenance.Get("/artifact/:artifactId/count", h.countByArtifact)
	maintenance.Get("/artifact/:artifactId", h.listByArtifact)

	maintenance.Post("", h.create)
	maintenance.Get("", h.list)
	maintenance.Get("/:id", h.get)
	maintenance.Put("/:id", h.update)
	maintenance.Delete("/:id", h.delete)

	maintenance.Post("/:id/start", h.start)
	maintenance.Post("/:id/complete", h.complete)
	maintenance.Post("/:id/cancel", h.cancel)
	maintenance.Post("/:id/actions", h.recordAction)
}

func (h *MaintenanceHandler) create(c *fiber.Ctx) error {
	var req maintenanceController.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.maintenanceController.Create(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err, "Failed to create maintenance record")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"maintenance": record,
	})
}

func (h *MaintenanceHandler) list(c *fiber.Ctx) error {
	records, err := h.maintenanceController.List(c.UserContext())
	if err != nil {
		return handleError(c, err, "Failed to list maintenance records")
	}

	return c.JSON(fiber.Map{
		"maintenance": records,
	})
}

func (h *MaintenanceHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	record, err := h.maintenanceController.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Failed to get maintenance record")
	}

	return c.JSON(fiber.Map{
		"maintenance": record,
	})
}

func (h *MaintenanceHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req maintenanceController.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.maintenanceController.Update(c.UserContext(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update maintenance record")
	}

	return c.JSON(fiber.Map{
		"maintenance": record,
	})
}

func (h *MaintenanceHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.maintenanceController.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err, "Failed to delete maintenance record")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *MaintenanceHandler) start(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	record, err := h.maintenanceController.Start(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Failed to start maintenance")
	}

	return c.JSON(fiber.Map{
		"maintenance": record,
	})
}

func (h *MaintenanceHandler) complete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req maintenanceController.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.maintenanceController.Complete(c.UserContext(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to complete maintenance")
	}

	return c.JSON(fiber.Map{
		"maintenance": record,
	})
}

func (h *MaintenanceHandler) cancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req maintenanceController.CancelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.maintenanceController.Cancel(c.UserContext(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to cancel maintenance")
	}

	return c.JSON(fiber.Map{
		"maintenance": record,
	})
}

func (h *MaintenanceHandler) recordAction(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req maintenanceController.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.maintenanceController.RecordAction(c.UserContext(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to record maintenance action")
	}

	return c.JSON(fiber.Map{
		"maintenance": record,
	})
}

func (h *MaintenanceHandler) scheduleNew(c *fiber.Ctx) error {
	var req maintenanceController.ScheduleNewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.maintenanceController.ScheduleNew(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err, "Failed to schedule maintenance")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"maintenance": record,
	})
}

func (h *MaintenanceHandler) listUpcoming(c *fiber.Ctx) error {
	records, err := h.maintenanceController.ListUpcoming(c.UserContext())
	if err != nil {
		return handleError(c, err, "Failed to list upcoming maintenance")
	}

	return c.JSON(fiber.Map{
		"maintenance": records,
	})
}

func (h *MaintenanceHandler) stats(c *fiber.Ctx) error {
	stats, err := h.maintenanceController.Stats(c.UserContext())
	if err != nil {
		return handleError(c, err, "Failed to get maintenance stats")
	}

	return c.JSON(fiber.Map{
		"stats": stats,
	})
}

func (h *MaintenanceHandler) listBetween(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	records, err := h.maintenanceController.ListBetween(c.UserContext(), from, to)
	if err != nil {
		return handleError(c, err, "Failed to list maintenance records")
	}

	return c.JSON(fiber.Map{
		"maintenance": records,
	})
}

func (h *MaintenanceHandler) listByStatus(c *fiber.Ctx) error {
	records, err := h.maintenanceController.ListByStatus(c.UserContext(), c.Params("status"))
	if err != nil {
		return handleError(c, err, "Failed to list maintenance records")
	}

	return c.JSON(fiber.Map{
		"maintenance": records,
	})
}

func (h *MaintenanceHandler) listByStaff(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("staffId")
	if err != nil || staffID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid staff id",
		})
	}

	records, err := h.maintenanceController.ListByStaff(c.UserContext(), staffID)
	if err != nil {
		return handleError(c, err, "Failed to list maintenance records")
	}

	return c.JSON(fiber.Map{
		"maintenance": records,
	})
}

func (h *MaintenanceHandler) countByStaff(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("staffId")
	if err != nil || staffID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid staff id",
		})
	}

	count, err := h.maintenanceController.CountByStaff(c.UserContext(), staffID)
	if err != nil {
		return handleError(c, err, "Failed to count maintenance records")
	}

	return c.JSON(fiber.Map{
		"count": count,
	})
}

func (h *MaintenanceHandler) countByArtifact(c *fiber.Ctx) error {
	artifactID, err := c.ParamsInt("artifactId")
	if err != nil || artifactID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid artifact id",
		})
	}

	count, err := h.maintenanceController.CountByArtifact(c.UserContext(), artifactID)
	if err != nil {
		return handleError(c, err, "Failed to count maintenance records")
	}

	return c.JSON(fiber.Map{
		"count": count,
	})
}

func (h *MaintenanceHandler) listByArtifact(c *fiber.Ctx) error {
	artifactID, err := c.ParamsInt("artifactId")
	if err != nil || artifactID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid artifact id",
		})
	}

	records, err := h.maintenanceController.ListByArtifact(c.UserContext(), artifactID)
	if err != nil {
		return handleError(c, err, "Failed to list maintenance records")
	}

	return c.JSON(fiber.Map{
		"maintenance": records,
	})
}
