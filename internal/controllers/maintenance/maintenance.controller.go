package maintenanceController

import (
	"context"
	"time"

	"musea/config"
	"musea/internal/services"
	"musea/pkg/logger"

	"github.com/shopspring/decimal"
)

const (
	MaxNotesLength       = 1000
	MaxDescriptionLength = 2000
)

type MaintenanceRequest struct {
	ArtifactID  int              `json:"artifactId"`
	StaffID     *int             `json:"staffId,omitempty"`
	Kind        string           `json:"kind"`
	Description string           `json:"description"`
	StartedAt   string           `json:"startedAt,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
}

type NoteRequest struct {
	Note string `json:"note"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type ScheduleNewRequest struct {
	ArtifactID  int    `json:"artifactId"`
	StaffID     *int   `json:"staffId,omitempty"`
	Description string `json:"description"`
}

type MaintenanceControllerInterface interface {
	Create(ctx context.Context, request *MaintenanceRequest) (*services.MaintenanceDTO, error)
	Update(ctx context.Context, id int, request *MaintenanceRequest) (*services.MaintenanceDTO, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*services.MaintenanceDTO, error)
	List(ctx context.Context) ([]*services.MaintenanceDTO, error)
	ListByStatus(ctx context.Context, status string) ([]*services.MaintenanceDTO, error)
	ListByStaff(ctx context.Context, staffID int) ([]*services.MaintenanceDTO, error)
	ListByArtifact(ctx context.Context, artifactID int) ([]*services.MaintenanceDTO, error)
	ListBetween(ctx context.Context, from string, to string) ([]*services.MaintenanceDTO, error)
	ListUpcoming(ctx context.Context) ([]*services.MaintenanceDTO, error)
	Start(ctx context.Context, id int) (*services.MaintenanceDTO, error)
	Complete(ctx context.Context, id int, request *NoteRequest) (*services.MaintenanceDTO, error)
	Cancel(ctx context.Context, id int, request *CancelRequest) (*services.MaintenanceDTO, error)
	RecordAction(ctx context.Context, id int, request *NoteRequest) (*services.MaintenanceDTO, error)
	ScheduleNew(ctx context.Context, request *ScheduleNewRequest) (*services.MaintenanceDTO, error)
	Stats(ctx context.Context) (*services.MaintenanceStats, error)
	CountByStaff(ctx context.Context, staffID int) (int64, error)
	CountByArtifact(ctx context.Context, artifactID int) (int64, error)
}

type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
	Config             config.Config
}

func New(
	maintenanceService *services.MaintenanceService,
	config config.Config,
) MaintenanceControllerInterface {
	return &MaintenanceController{
		maintenanceService: maintenanceService,
		Config:             config,
	}
}

func parseDateTime(dateStr string) (time.Time, error) {
	return time.Parse(time.RFC3339, dateStr)
}

func (c *MaintenanceController) toDTO(
	ctx context.Context,
	request *MaintenanceRequest,
) (*services.MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceController").Function("toDTO")

	if request == nil {
		return nil, log.ErrorWithType(services.ErrValidation, "request body is required")
	}

	if len(request.Description) > MaxDescriptionLength {
		return nil, log.ErrorWithType(
			services.ErrValidation,
			"description exceeds maximum length",
			"length", len(request.Description),
			"max", MaxDescriptionLength,
		)
	}

	dto := &services.MaintenanceDTO{
		ArtifactID:  request.ArtifactID,
		StaffID:     request.StaffID,
		Kind:        request.Kind,
		Description: request.Description,
		Cost:        request.Cost,
	}

	if request.StartedAt != "" {
		startedAt, err := parseDateTime(request.StartedAt)
		if err != nil {
			return nil, log.ErrorWithType(
				services.ErrValidation,
				"invalid startedAt, expected RFC3339",
				"startedAt", request.StartedAt,
			)
		}
		dto.StartedAt = startedAt
	}

	return dto, nil
}

func (c *MaintenanceController) Create(
	ctx context.Context,
	request *MaintenanceRequest,
) (*services.MaintenanceDTO, error) {
	dto, err := c.toDTO(ctx, request)
	if err != nil {
		return nil, err
	}

	return c.maintenanceService.Create(ctx, dto)
}

func (c *MaintenanceController) Update(
	ctx context.Context,
	id int,
	request *MaintenanceRequest,
) (*services.MaintenanceDTO, error) {
	dto, err := c.toDTO(ctx, request)
	if err != nil {
		return nil, err
	}

	return c.maintenanceService.Update(ctx, id, dto)
}

func (c *MaintenanceController) Delete(ctx context.Context, id int) error {
	return c.maintenanceService.Delete(ctx, id)
}

func (c *MaintenanceController) Get(ctx context.Context, id int) (*services.MaintenanceDTO, error) {
	return c.maintenanceService.Get(ctx, id)
}

func (c *MaintenanceController) List(ctx context.Context) ([]*services.MaintenanceDTO, error) {
	return c.maintenanceService.GetAll(ctx)
}

func (c *MaintenanceController) ListByStatus(
	ctx context.Context,
	status string,
) ([]*services.MaintenanceDTO, error) {
	return c.maintenanceService.ListByStatus(ctx, status)
}

func (c *MaintenanceController) ListByStaff(
	ctx context.Context,
	staffID int,
) ([]*services.MaintenanceDTO, error) {
	return c.maintenanceService.ListByStaff(ctx, staffID)
}

func (c *MaintenanceController) ListByArtifact(
	ctx context.Context,
	artifactID int,
) ([]*services.MaintenanceDTO, error) {
	return c.maintenanceService.ListByArtifact(ctx, artifactID)
}

func (c *MaintenanceController) ListBetween(
	ctx context.Context,
	from string,
	to string,
) ([]*services.MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceController").Function("ListBetween")

	start, err := parseDateTime(from)
	if err != nil {
		return nil, log.ErrorWithType(services.ErrValidation, "invalid from, expected RFC3339", "from", from)
	}

	end, err := parseDateTime(to)
	if err != nil {
		return nil, log.ErrorWithType(services.ErrValidation, "invalid to, expected RFC3339", "to", to)
	}

	return c.maintenanceService.ListBetween(ctx, start, end)
}

func (c *MaintenanceController) ListUpcoming(ctx context.Context) ([]*services.MaintenanceDTO, error) {
	return c.maintenanceService.ListUpcoming(ctx)
}

func (c *MaintenanceController) Start(ctx context.Context, id int) (*services.MaintenanceDTO, error) {
	return c.maintenanceService.Start(ctx, id)
}

func (c *MaintenanceController) Complete(
	ctx context.Context,
	id int,
	request *NoteRequest,
) (*services.MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceController").Function("Complete")

	if request == nil {
		return nil, log.ErrorWithType(services.ErrValidation, "request body is required")
	}

	if len(request.Note) > MaxNotesLength {
		return nil, log.ErrorWithType(
			services.ErrValidation,
			"note exceeds maximum length",
			"length", len(request.Note),
			"max", MaxNotesLength,
		)
	}

	return c.maintenanceService.Complete(ctx, id, request.Note)
}

func (c *MaintenanceController) Cancel(
	ctx context.Context,
	id int,
	request *CancelRequest,
) (*services.MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceController").Function("Cancel")

	if request == nil || request.Reason == "" {
		return nil, log.ErrorWithType(services.ErrValidation, "cancellation reason is required")
	}

	return c.maintenanceService.Cancel(ctx, id, request.Reason)
}

func (c *MaintenanceController) RecordAction(
	ctx context.Context,
	id int,
	request *NoteRequest,
) (*services.MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceController").Function("RecordAction")

	if request == nil || request.Note == "" {
		return nil, log.ErrorWithType(services.ErrValidation, "action note is required")
	}

	if len(request.Note) > MaxNotesLength {
		return nil, log.ErrorWithType(
			services.ErrValidation,
			"note exceeds maximum length",
			"length", len(request.Note),
			"max", MaxNotesLength,
		)
	}

	return c.maintenanceService.RecordAction(ctx, id, request.Note)
}

func (c *MaintenanceController) ScheduleNew(
	ctx context.Context,
	request *ScheduleNewRequest,
) (*services.MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceController").Function("ScheduleNew")

	if request == nil {
		return nil, log.ErrorWithType(services.ErrValidation, "request body is required")
	}

	return c.maintenanceService.ScheduleNew(ctx, request.ArtifactID, request.StaffID, request.Description)
}

func (c *MaintenanceController) Stats(ctx context.Context) (*services.MaintenanceStats, error) {
	return c.maintenanceService.Stats(ctx)
}

func (c *MaintenanceController) CountByStaff(ctx context.Context, staffID int) (int64, error) {
	return c.maintenanceService.CountByStaff(ctx, staffID)
}

func (c *MaintenanceController) CountByArtifact(ctx context.Context, artifactID int) (int64, error) {
	return c.maintenanceService.CountByArtifact(ctx, artifactID)
}
