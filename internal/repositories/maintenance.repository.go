package repositories

import (
	"context"
	"time"

	"musea/pkg/logger"
	. "musea/internal/models"

	"gorm.io/gorm"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *MaintenanceRecord) error
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*MaintenanceRecord, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*MaintenanceRecord, error)
	Update(ctx context.Context, tx *gorm.DB, record *MaintenanceRecord) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error

	GetByStatus(ctx context.Context, tx *gorm.DB, status MaintenanceStatus) ([]*MaintenanceRecord, error)
	GetByStaff(ctx context.Context, tx *gorm.DB, staffID int) ([]*MaintenanceRecord, error)
	GetByArtifact(ctx context.Context, tx *gorm.DB, artifactID int) ([]*MaintenanceRecord, error)
	GetByStartedBetween(
		ctx context.Context,
		tx *gorm.DB,
		start time.Time,
		end time.Time,
	) ([]*MaintenanceRecord, error)
	GetUpcoming(ctx context.Context, tx *gorm.DB) ([]*MaintenanceRecord, error)

	CountByStatus(ctx context.Context, tx *gorm.DB, status MaintenanceStatus) (int64, error)
	CountByStaff(ctx context.Context, tx *gorm.DB, staffID int) (int64, error)
	CountByArtifact(ctx context.Context, tx *gorm.DB, artifactID int) (int64, error)
}

type maintenanceRepository struct{}

func NewMaintenanceRepository() MaintenanceRepository {
	return &maintenanceRepository{}
}

func (r *maintenanceRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	record *MaintenanceRecord,
) error {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("Create")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Create(record).Error; err != nil {
		return log.ErrorWithType(
			ErrPersistence,
			"failed to create maintenance record",
			"error", err,
			"artifactID", record.ArtifactID,
		)
	}

	log.Info("Maintenance record created", "id", record.ID, "artifactID", record.ArtifactID)
	return nil
}

// GetByID returns nil, nil when no record exists. Absence is not an error.
func (r *maintenanceRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) (*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("GetByID")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var record MaintenanceRecord
	if err := tx.WithContext(ctx).First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, log.ErrorWithType(
			ErrPersistence,
			"failed to get maintenance record",
			"error", err,
			"id", id,
		)
	}

	return &record, nil
}

func (r *maintenanceRepository) GetAll(
	ctx context.Context,
	tx *gorm.DB,
) ([]*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("GetAll")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var records []*MaintenanceRecord
	if err := tx.WithContext(ctx).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, log.ErrorWithType(ErrPersistence, "failed to get maintenance records", "error", err)
	}

	return records, nil
}

// Update is a full-row overwrite, including nullable staff and completion
// columns.
func (r *maintenanceRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	record *MaintenanceRecord,
) error {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("Update")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Save(record).Error; err != nil {
		return log.ErrorWithType(
			ErrPersistence,
			"failed to update maintenance record",
			"error", err,
			"id", record.ID,
		)
	}

	return nil
}

// Delete is a hard delete and a no-op for an absent id.
func (r *maintenanceRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("Delete")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Delete(&MaintenanceRecord{}, id).Error; err != nil {
		return log.ErrorWithType(
			ErrPersistence,
			"failed to delete maintenance record",
			"error", err,
			"id", id,
		)
	}

	return nil
}

func (r *maintenanceRepository) GetByStatus(
	ctx context.Context,
	tx *gorm.DB,
	status MaintenanceStatus,
) ([]*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("GetByStatus")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var records []*MaintenanceRecord
	if err := tx.WithContext(ctx).
		Where("status = ?", status).
		Order("started_at DESC").
		Find(&records).Error; err != nil {
		return nil, log.ErrorWithType(
			ErrPersistence,
			"failed to get maintenance records by status",
			"error", err,
			"status", status,
		)
	}

	return records, nil
}

func (r *maintenanceRepository) GetByStaff(
	ctx context.Context,
	tx *gorm.DB,
	staffID int,
) ([]*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("GetByStaff")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var records []*MaintenanceRecord
	if err := tx.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("started_at DESC").
		Find(&records).Error; err != nil {
		return nil, log.ErrorWithType(
			ErrPersistence,
			"failed to get maintenance records by staff",
			"error", err,
			"staffID", staffID,
		)
	}

	return records, nil
}

func (r *maintenanceRepository) GetByArtifact(
	ctx context.Context,
	tx *gorm.DB,
	artifactID int,
) ([]*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("GetByArtifact")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var records []*MaintenanceRecord
	if err := tx.WithContext(ctx).
		Where("artifact_id = ?", artifactID).
		Order("started_at DESC").
		Find(&records).Error; err != nil {
		return nil, log.ErrorWithType(
			ErrPersistence,
			"failed to get maintenance records by artifact",
			"error", err,
			"artifactID", artifactID,
		)
	}

	return records, nil
}

func (r *maintenanceRepository) GetByStartedBetween(
	ctx context.Context,
	tx *gorm.DB,
	start time.Time,
	end time.Time,
) ([]*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("GetByStartedBetween")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var records []*MaintenanceRecord
	if err := tx.WithContext(ctx).
		Where("started_at BETWEEN ? AND ?", start, end).
		Order("started_at DESC").
		Find(&records).Error; err != nil {
		return nil, log.ErrorWithType(
			ErrPersistence,
			"failed to get maintenance records by window",
			"error", err,
			"start", start,
			"end", end,
		)
	}

	return records, nil
}

// GetUpcoming returns scheduled records whose start time is strictly in the
// future.
func (r *maintenanceRepository) GetUpcoming(
	ctx context.Context,
	tx *gorm.DB,
) ([]*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("GetUpcoming")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var records []*MaintenanceRecord
	if err := tx.WithContext(ctx).
		Where("status = ? AND started_at > ?", MaintenanceStatusScheduled, time.Now()).
		Order("started_at DESC").
		Find(&records).Error; err != nil {
		return nil, log.ErrorWithType(ErrPersistence, "failed to get upcoming maintenance", "error", err)
	}

	return records, nil
}

func (r *maintenanceRepository) CountByStatus(
	ctx context.Context,
	tx *gorm.DB,
	status MaintenanceStatus,
) (int64, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("CountByStatus")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var count int64
	if err := tx.WithContext(ctx).
		Model(&MaintenanceRecord{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, log.ErrorWithType(
			ErrPersistence,
			"failed to count maintenance records by status",
			"error", err,
			"status", status,
		)
	}

	return count, nil
}

func (r *maintenanceRepository) CountByStaff(
	ctx context.Context,
	tx *gorm.DB,
	staffID int,
) (int64, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("CountByStaff")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var count int64
	if err := tx.WithContext(ctx).
		Model(&MaintenanceRecord{}).
		Where("staff_id = ?", staffID).
		Count(&count).Error; err != nil {
		return 0, log.ErrorWithType(
			ErrPersistence,
			"failed to count maintenance records by staff",
			"error", err,
			"staffID", staffID,
		)
	}

	return count, nil
}

func (r *maintenanceRepository) CountByArtifact(
	ctx context.Context,
	tx *gorm.DB,
	artifactID int,
) (int64, error) {
	log := logger.NewWithContext(ctx, "maintenanceRepository").Function("CountByArtifact")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var count int64
	if err := tx.WithContext(ctx).
		Model(&MaintenanceRecord{}).
		Where("artifact_id = ?", artifactID).
		Count(&count).Error; err != nil {
		return 0, log.ErrorWithType(
			ErrPersistence,
			"failed to count maintenance records by artifact",
			"error", err,
			"artifactID", artifactID,
		)
	}

	return count, nil
}
