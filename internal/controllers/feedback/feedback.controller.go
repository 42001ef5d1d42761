package feedbackController

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
)

const DateFormat = "2006-01-02"

type FeedbackRequest struct {
	VisitorName string  `json:"visitorName"`
	Rating      int     `json:"rating"`
	Comment     *string `json:"comment,omitempty"`
	VisitedOn   string  `json:"visitedOn,omitempty"`
}

type FeedbackControllerInterface interface {
	Create(ctx context.Context, request *FeedbackRequest) (*Feedback, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*Feedback, error)
	List(ctx context.Context) ([]*Feedback, error)
	AverageRating(ctx context.Context) (float64, error)
}

type FeedbackController struct {
	feedbackRepo repositories.FeedbackRepository
	db           database.DB
	Config       config.Config
}

func New(
	repos repositories.Repository,
	db database.DB,
	config config.Config,
) FeedbackControllerInterface {
	return &FeedbackController{
		feedbackRepo: repos.Feedback,
		db:           db,
		Config:       config,
	}
}

func (c *FeedbackController) Create(ctx context.Context, request *FeedbackRequest) (*Feedback, error) {
	log := logger.NewWithContext(ctx, "feedbackController").Function("Create")

	if request == nil {
		return nil, log.ErrorWithType(services.ErrValidation, "request body is required")
	}

	if request.VisitorName == "" {
		return nil, log.ErrorWithType(services.ErrValidation, "visitor name is required")
	}

	if request.Rating < MinRating || request.Rating > MaxRating {
		return nil, log.ErrorWithType(
			services.ErrValidation,
			"rating out of range",
			"rating", request.Rating,
			"min", MinRating,
			"max", MaxRating,
		)
	}

	visitedOn := time.Now()
	if request.VisitedOn != "" {
		parsed, err := time.Parse(DateFormat, request.VisitedOn)
		if err != nil {
			return nil, log.ErrorWithType(
				services.ErrValidation,
				"invalid visitedOn, expected YYYY-MM-DD",
				"visitedOn", request.VisitedOn,
			)
		}
		visitedOn = parsed
	}

	feedback := &Feedback{
		VisitorName: request.VisitorName,
		Rating:      request.Rating,
		Comment:     request.Comment,
		VisitedOn:   datatypes.Date(visitedOn),
	}

	if err := c.feedbackRepo.Create(ctx, c.db.SQL, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (c *FeedbackController) Delete(ctx context.Context, id int) error {
	return c.feedbackRepo.Delete(ctx, c.db.SQL, id)
}

func (c *FeedbackController) Get(ctx context.Context, id int) (*Feedback, error) {
	log := logger.NewWithContext(ctx, "feedbackController").Function("Get")

	feedback, err := c.feedbackRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, log.ErrorWithType(services.ErrNotFound, "feedback not found", "id", id)
	}

	return feedback, nil
}

func (c *FeedbackController) List(ctx context.Context) ([]*Feedback, error) {
	return c.feedbackRepo.GetAll(ctx, c.db.SQL)
}

func (c *FeedbackController) AverageRating(ctx context.Context) (float64, error) {
	return c.feedbackRepo.AverageRating(ctx, c.db.SQL)
}
