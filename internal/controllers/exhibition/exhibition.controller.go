package exhibitionController

import (
	"context"
	"time"

	"musea/config"
	"musea/internal/database"
	"musea/internal/repositories"
	"musea/internal/services"
	"musea/pkg/logger"
	. "musea/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DateFormat = "2006-01-02"

type ExhibitionRequest struct {
	Name      string `json:"name"`
	Theme     string `json:"theme,omitempty"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type SetArtifactsRequest struct {
	ArtifactIDs []int `json:"artifactIds"`
}

type ExhibitionControllerInterface interface {
	Create(ctx context.Context, request *ExhibitionRequest) (*Exhibition, error)
	Update(ctx context.Context, id int, request *ExhibitionRequest) (*Exhibition, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*Exhibition, error)
	List(ctx context.Context) ([]*Exhibition, error)
	ListActiveOn(ctx context.Context, date string) ([]*Exhibition, error)
	SetArtifacts(ctx context.Context, id int, request *SetArtifactsRequest) (*Exhibition, error)
}

type ExhibitionController struct {
	exhibitionRepo     repositories.ExhibitionRepository
	artifactRepo       repositories.ArtifactRepository
	transactionService *services.TransactionService
	db                 database.DB
	Config             config.Config
}

func New(
	repos repositories.Repository,
	service services.Service,
	db database.DB,
	config config.Config,
) ExhibitionControllerInterface {
	return &ExhibitionController{
		exhibitionRepo:     repos.Exhibition,
		artifactRepo:       repos.Artifact,
		transactionService: service.Transaction,
		db:                 db,
		Config:             config,
	}
}

func (c *ExhibitionController) validate(
	ctx context.Context,
	request *ExhibitionRequest,
) (*Exhibition, error) {
	log := logger.NewWithContext(ctx, "exhibitionController").Function("validate")

	if request == nil {
		return nil, log.ErrorWithType(services.ErrValidation, "request body is required")
	}

	if request.Name == "" {
		return nil, log.ErrorWithType(services.ErrValidation, "exhibition name is required")
	}

	startDate, err := time.Parse(DateFormat, request.StartDate)
	if err != nil {
		return nil, log.ErrorWithType(
			services.ErrValidation,
			"invalid startDate, expected YYYY-MM-DD",
			"startDate", request.StartDate,
		)
	}

	endDate, err := time.Parse(DateFormat, request.EndDate)
	if err != nil {
		return nil, log.ErrorWithType(
			services.ErrValidation,
			"invalid endDate, expected YYYY-MM-DD",
			"endDate", request.EndDate,
		)
	}

	if endDate.Before(startDate) {
		return nil, log.ErrorWithType(
			services.ErrValidation,
			"endDate must not be before startDate",
			"startDate", request.StartDate,
			"endDate", request.EndDate,
		)
	}

	return &Exhibition{
		Name:      request.Name,
		Theme:     request.Theme,
		Location:  request.Location,
		StartDate: datatypes.Date(startDate),
		EndDate:   datatypes.Date(endDate),
	}, nil
}

func (c *ExhibitionController) Create(
	ctx context.Context,
	request *ExhibitionRequest,
) (*Exhibition, error) {
	exhibition, err := c.validate(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := c.exhibitionRepo.Create(ctx, c.db.SQL, exhibition); err != nil {
		return nil, err
	}

	return exhibition, nil
}

func (c *ExhibitionController) Update(
	ctx context.Context,
	id int,
	request *ExhibitionRequest,
) (*Exhibition, error) {
	log := logger.NewWithContext(ctx, "exhibitionController").Function("Update")

	exhibition, err := c.validate(ctx, request)
	if err != nil {
		return nil, err
	}

	existing, err := c.exhibitionRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, log.ErrorWithType(services.ErrNotFound, "exhibition not found", "id", id)
	}

	exhibition.ID = existing.ID
	exhibition.CreatedAt = existing.CreatedAt

	if err := c.exhibitionRepo.Update(ctx, c.db.SQL, exhibition); err != nil {
		return nil, err
	}

	return exhibition, nil
}

func (c *ExhibitionController) Delete(ctx context.Context, id int) error {
	return c.exhibitionRepo.Delete(ctx, c.db.SQL, id)
}

func (c *ExhibitionController) Get(ctx context.Context, id int) (*Exhibition, error) {
	log := logger.NewWithContext(ctx, "exhibitionController").Function("Get")

	exhibition, err := c.exhibitionRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if exhibition == nil {
		return nil, log.ErrorWithType(services.ErrNotFound, "exhibition not found", "id", id)
	}

	return exhibition, nil
}

func (c *ExhibitionController) List(ctx context.Context) ([]*Exhibition, error) {
	return c.exhibitionRepo.GetAll(ctx, c.db.SQL)
}

func (c *ExhibitionController) ListActiveOn(ctx context.Context, date string) ([]*Exhibition, error) {
	log := logger.NewWithContext(ctx, "exhibitionController").Function("ListActiveOn")

	day, err := time.Parse(DateFormat, date)
	if err != nil {
		return nil, log.ErrorWithType(
			services.ErrValidation,
			"invalid date, expected YYYY-MM-DD",
			"date", date,
		)
	}

	return c.exhibitionRepo.GetActiveOn(ctx, c.db.SQL, day)
}

// SetArtifacts replaces the artifact assignment in a single transaction so a
// missing artifact id leaves the previous assignment untouched.
func (c *ExhibitionController) SetArtifacts(
	ctx context.Context,
	id int,
	request *SetArtifactsRequest,
) (*Exhibition, error) {
	log := logger.NewWithContext(ctx, "exhibitionController").Function("SetArtifacts")

	if request == nil {
		return nil, log.ErrorWithType(services.ErrValidation, "request body is required")
	}

	exhibition, err := c.exhibitionRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if exhibition == nil {
		return nil, log.ErrorWithType(services.ErrNotFound, "exhibition not found", "id", id)
	}

	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		artifacts := make([]*Artifact, 0, len(request.ArtifactIDs))
		for _, artifactID := range request.ArtifactIDs {
			artifact, err := c.artifactRepo.GetByID(ctx, tx, artifactID)
			if err != nil {
				return err
			}
			if artifact == nil {
				return log.ErrorWithType(services.ErrNotFound, "artifact not found", "id", artifactID)
			}
			artifacts = append(artifacts, artifact)
		}

		return c.exhibitionRepo.SetArtifacts(ctx, tx, exhibition, artifacts)
	})
	if err != nil {
		return nil, err
	}

	return c.exhibitionRepo.GetByID(ctx, c.db.SQL, id)
}
