package repositories

import (
	"context"

	"musea/pkg/logger"
	. "musea/internal/models"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, tx *gorm.DB, feedback *Feedback) error
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Feedback, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Feedback, error)
	Delete(ctx context.Context, tx *gorm.DB, id int) error

	AverageRating(ctx context.Context, tx *gorm.DB) (float64, error)
}

type feedbackRepository struct{}

func NewFeedbackRepository() FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(ctx context.Context, tx *gorm.DB, feedback *Feedback) error {
	log := logger.NewWithContext(ctx, "feedbackRepository").Function("Create")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Create(feedback).Error; err != nil {
		return log.ErrorWithType(
			ErrPersistence,
			"failed to create feedback",
			"error", err,
			"visitor", feedback.VisitorName,
		)
	}

	return nil
}

func (r *feedbackRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Feedback, error) {
	log := logger.NewWithContext(ctx, "feedbackRepository").Function("GetByID")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var feedback Feedback
	if err := tx.WithContext(ctx).First(&feedback, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, log.ErrorWithType(ErrPersistence, "failed to get feedback", "error", err, "id", id)
	}

	return &feedback, nil
}

func (r *feedbackRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Feedback, error) {
	log := logger.NewWithContext(ctx, "feedbackRepository").Function("GetAll")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var feedback []*Feedback
	if err := tx.WithContext(ctx).
		Order("visited_on DESC").
		Find(&feedback).Error; err != nil {
		return nil, log.ErrorWithType(ErrPersistence, "failed to get feedback list", "error", err)
	}

	return feedback, nil
}

func (r *feedbackRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "feedbackRepository").Function("Delete")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Delete(&Feedback{}, id).Error; err != nil {
		return log.ErrorWithType(ErrPersistence, "failed to delete feedback", "error", err, "id", id)
	}

	return nil
}

func (r *feedbackRepository) AverageRating(ctx context.Context, tx *gorm.DB) (float64, error) {
	log := logger.NewWithContext(ctx, "feedbackRepository").Function("AverageRating")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var average float64
	if err := tx.WithContext(ctx).
		Model(&Feedback{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error; err != nil {
		return 0, log.ErrorWithType(ErrPersistence, "failed to compute average rating", "error", err)
	}

	return average, nil
}
