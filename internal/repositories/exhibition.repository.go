package repositories

import (
	"context"
	"time"

	"musea/pkg/logger"
	. "musea/internal/models"

	"gorm.io/gorm"
)

type ExhibitionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, exhibition *Exhibition) error
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Exhibition, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Exhibition, error)
	Update(ctx context.Context, tx *gorm.DB, exhibition *Exhibition) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error

	GetActiveOn(ctx context.Context, tx *gorm.DB, date time.Time) ([]*Exhibition, error)
	SetArtifacts(ctx context.Context, tx *gorm.DB, exhibition *Exhibition, artifacts []*Artifact) error
}

type exhibitionRepository struct{}

func NewExhibitionRepository() ExhibitionRepository {
	return &exhibitionRepository{}
}

func (r *exhibitionRepository) Create(ctx context.Context, tx *gorm.DB, exhibition *Exhibition) error {
	log := logger.NewWithContext(ctx, "exhibitionRepository").Function("Create")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Create(exhibition).Error; err != nil {
		return log.ErrorWithType(
			ErrPersistence,
			"failed to create exhibition",
			"error", err,
			"name", exhibition.Name,
		)
	}

	log.Info("Exhibition created", "id", exhibition.ID, "name", exhibition.Name)
	return nil
}

func (r *exhibitionRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Exhibition, error) {
	log := logger.NewWithContext(ctx, "exhibitionRepository").Function("GetByID")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var exhibition Exhibition
	if err := tx.WithContext(ctx).
		Preload("Artifacts").
		First(&exhibition, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, log.ErrorWithType(ErrPersistence, "failed to get exhibition", "error", err, "id", id)
	}

	return &exhibition, nil
}

func (r *exhibitionRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Exhibition, error) {
	log := logger.NewWithContext(ctx, "exhibitionRepository").Function("GetAll")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var exhibitions []*Exhibition
	if err := tx.WithContext(ctx).
		Order("start_date DESC").
		Find(&exhibitions).Error; err != nil {
		return nil, log.ErrorWithType(ErrPersistence, "failed to get exhibitions", "error", err)
	}

	return exhibitions, nil
}

func (r *exhibitionRepository) Update(ctx context.Context, tx *gorm.DB, exhibition *Exhibition) error {
	log := logger.NewWithContext(ctx, "exhibitionRepository").Function("Update")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).
		Omit("Artifacts").
		Save(exhibition).Error; err != nil {
		return log.ErrorWithType(
			ErrPersistence,
			"failed to update exhibition",
			"error", err,
			"id", exhibition.ID,
		)
	}

	return nil
}

func (r *exhibitionRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "exhibitionRepository").Function("Delete")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Delete(&Exhibition{}, id).Error; err != nil {
		return log.ErrorWithType(ErrPersistence, "failed to delete exhibition", "error", err, "id", id)
	}

	return nil
}

// GetActiveOn returns exhibitions whose date range covers the given date.
func (r *exhibitionRepository) GetActiveOn(
	ctx context.Context,
	tx *gorm.DB,
	date time.Time,
) ([]*Exhibition, error) {
	log := logger.NewWithContext(ctx, "exhibitionRepository").Function("GetActiveOn")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var exhibitions []*Exhibition
	if err := tx.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Order("start_date DESC").
		Find(&exhibitions).Error; err != nil {
		return nil, log.ErrorWithType(ErrPersistence, "failed to get active exhibitions", "error", err)
	}

	return exhibitions, nil
}

// SetArtifacts replaces the exhibition's artifact assignment.
func (r *exhibitionRepository) SetArtifacts(
	ctx context.Context,
	tx *gorm.DB,
	exhibition *Exhibition,
	artifacts []*Artifact,
) error {
	log := logger.NewWithContext(ctx, "exhibitionRepository").Function("SetArtifacts")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).
		Model(exhibition).
		Association("Artifacts").
		Replace(artifacts); err != nil {
		return log.ErrorWithType(
			ErrPersistence,
			"failed to set exhibition artifacts",
			"error", err,
			"id", exhibition.ID,
			"count", len(artifacts),
		)
	}

	return nil
}
