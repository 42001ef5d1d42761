package staffController

import (
	"context"
	"strings"

	"musea/config"
	"musea/internal/database"
	"musea/internal/repositories"
	"musea/internal/services"
	"musea/pkg/logger"
	. "musea/internal/models"
)

type StaffRequest struct {
	Name  string  `json:"name"`
	Role  string  `json:"role,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type StaffControllerInterface interface {
	Create(ctx context.Context, request *StaffRequest) (*Staff, error)
	Update(ctx context.Context, id int, request *StaffRequest) (*Staff, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*Staff, error)
	List(ctx context.Context) ([]*Staff, error)
}

type StaffController struct {
	staffRepo repositories.StaffRepository
	db        database.DB
	Config    config.Config
}

func New(
	repos repositories.Repository,
	db database.DB,
	config config.Config,
) StaffControllerInterface {
	return &StaffController{
		staffRepo: repos.Staff,
		db:        db,
		Config:    config,
	}
}

func (c *StaffController) validate(ctx context.Context, request *StaffRequest) (*Staff, error) {
	log := logger.NewWithContext(ctx, "staffController").Function("validate")

	if request == nil {
		return nil, log.ErrorWithType(services.ErrValidation, "request body is required")
	}

	if request.Name == "" {
		return nil, log.ErrorWithType(services.ErrValidation, "staff name is required")
	}

	if request.Email != nil && !strings.Contains(*request.Email, "@") {
		return nil, log.ErrorWithType(services.ErrValidation, "invalid email address", "email", *request.Email)
	}

	return &Staff{
		Name:  request.Name,
		Role:  request.Role,
		Email: request.Email,
		Phone: request.Phone,
	}, nil
}

func (c *StaffController) Create(ctx context.Context, request *StaffRequest) (*Staff, error) {
	staff, err := c.validate(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := c.staffRepo.Create(ctx, c.db.SQL, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

func (c *StaffController) Update(ctx context.Context, id int, request *StaffRequest) (*Staff, error) {
	log := logger.NewWithContext(ctx, "staffController").Function("Update")

	staff, err := c.validate(ctx, request)
	if err != nil {
		return nil, err
	}

	existing, err := c.staffRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, log.ErrorWithType(services.ErrNotFound, "staff not found", "id", id)
	}

	staff.ID = existing.ID
	staff.CreatedAt = existing.CreatedAt

	if err := c.staffRepo.Update(ctx, c.db.SQL, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

func (c *StaffController) Delete(ctx context.Context, id int) error {
	return c.staffRepo.Delete(ctx, c.db.SQL, id)
}

func (c *StaffController) Get(ctx context.Context, id int) (*Staff, error) {
	log := logger.NewWithContext(ctx, "staffController").Function("Get")

	staff, err := c.staffRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, log.ErrorWithType(services.ErrNotFound, "staff not found", "id", id)
	}

	return staff, nil
}

func (c *StaffController) List(ctx context.Context) ([]*Staff, error) {
	return c.staffRepo.GetAll(ctx, c.db.SQL)
}
