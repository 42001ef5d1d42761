package artifactController

import (
	"context"
	"time"

	"musea/config"
	"musea/internal/database"
	"musea/internal/repositories"
	"musea/internal/services"
	"musea/pkg/logger"
	. "musea/internal/models"

	"github.com/shopspring/decimal"
)

const DateFormat = "2006-01-02"

type ArtifactRequest struct {
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Origin       string           `json:"origin,omitempty"`
	Era          string           `json:"era,omitempty"`
	Condition    string           `json:"condition,omitempty"`
	AcquiredAt   string           `json:"acquiredAt,omitempty"`
	InsuredValue *decimal.Decimal `json:"insuredValue,omitempty"`
	OnDisplay    bool             `json:"onDisplay"`
}

type ArtifactControllerInterface interface {
	Create(ctx context.Context, request *ArtifactRequest) (*Artifact, error)
	Update(ctx context.Context, id int, request *ArtifactRequest) (*Artifact, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*Artifact, error)
	List(ctx context.Context) ([]*Artifact, error)
	Search(ctx context.Context, name string) ([]*Artifact, error)
	ListByCondition(ctx context.Context, condition string) ([]*Artifact, error)
}

type ArtifactController struct {
	artifactRepo repositories.ArtifactRepository
	db           database.DB
	Config       config.Config
}

func New(
	repos repositories.Repository,
	db database.DB,
	config config.Config,
) ArtifactControllerInterface {
	return &ArtifactController{
		artifactRepo: repos.Artifact,
		db:           db,
		Config:       config,
	}
}

func (c *ArtifactController) validate(ctx context.Context, request *ArtifactRequest) (*Artifact, error) {
	log := logger.NewWithContext(ctx, "artifactController").Function("validate")

	if request == nil {
		return nil, log.ErrorWithType(services.ErrValidation, "request body is required")
	}

	if request.Code == "" {
		return nil, log.ErrorWithType(services.ErrValidation, "artifact code is required")
	}

	if request.Name == "" {
		return nil, log.ErrorWithType(services.ErrValidation, "artifact name is required")
	}

	if request.InsuredValue != nil && request.InsuredValue.IsNegative() {
		return nil, log.ErrorWithType(
			services.ErrValidation,
			"insured value must not be negative",
			"insuredValue", request.InsuredValue.String(),
		)
	}

	artifact := &Artifact{
		Code:         request.Code,
		Name:         request.Name,
		Origin:       request.Origin,
		Era:          request.Era,
		Condition:    request.Condition,
		InsuredValue: request.InsuredValue,
		OnDisplay:    request.OnDisplay,
	}

	if request.AcquiredAt != "" {
		acquiredAt, err := time.Parse(DateFormat, request.AcquiredAt)
		if err != nil {
			return nil, log.ErrorWithType(
				services.ErrValidation,
				"invalid acquiredAt, expected YYYY-MM-DD",
				"acquiredAt", request.AcquiredAt,
			)
		}
		artifact.AcquiredAt = &acquiredAt
	}

	return artifact, nil
}

func (c *ArtifactController) Create(ctx context.Context, request *ArtifactRequest) (*Artifact, error) {
	artifact, err := c.validate(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := c.artifactRepo.Create(ctx, c.db.SQL, artifact); err != nil {
		return nil, err
	}

	return artifact, nil
}

func (c *ArtifactController) Update(
	ctx context.Context,
	id int,
	request *ArtifactRequest,
) (*Artifact, error) {
	log := logger.NewWithContext(ctx, "artifactController").Function("Update")

	artifact, err := c.validate(ctx, request)
	if err != nil {
		return nil, err
	}

	existing, err := c.artifactRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, log.ErrorWithType(services.ErrNotFound, "artifact not found", "id", id)
	}

	artifact.ID = existing.ID
	artifact.CreatedAt = existing.CreatedAt

	if err := c.artifactRepo.Update(ctx, c.db.SQL, artifact); err != nil {
		return nil, err
	}

	return artifact, nil
}

func (c *ArtifactController) Delete(ctx context.Context, id int) error {
	return c.artifactRepo.Delete(ctx, c.db.SQL, id)
}

func (c *ArtifactController) Get(ctx context.Context, id int) (*Artifact, error) {
	log := logger.NewWithContext(ctx, "artifactController").Function("Get")

	artifact, err := c.artifactRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if artifact == nil {
		return nil, log.ErrorWithType(services.ErrNotFound, "artifact not found", "id", id)
	}

	return artifact, nil
}

func (c *ArtifactController) List(ctx context.Context) ([]*Artifact, error) {
	return c.artifactRepo.GetAll(ctx, c.db.SQL)
}

func (c *ArtifactController) Search(ctx context.Context, name string) ([]*Artifact, error) {
	log := logger.NewWithContext(ctx, "artifactController").Function("Search")

	if name == "" {
		return nil, log.ErrorWithType(services.ErrValidation, "search name is required")
	}

	return c.artifactRepo.SearchByName(ctx, c.db.SQL, name)
}

func (c *ArtifactController) ListByCondition(
	ctx context.Context,
	condition string,
) ([]*Artifact, error) {
	log := logger.NewWithContext(ctx, "artifactController").Function("ListByCondition")

	if condition == "" {
		return nil, log.ErrorWithType(services.ErrValidation, "condition is required")
	}

	return c.artifactRepo.GetByCondition(ctx, c.db.SQL, condition)
}
