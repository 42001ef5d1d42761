package repositories

import (
	"context"
	"time"

	"musea/internal/database"
	"musea/pkg/logger"
	. "musea/internal/models"

	"gorm.io/gorm"
)

const (
	STAFF_NAME_CACHE_PREFIX = "staff_name"
	STAFF_NAME_CACHE_EXPIRY = 24 * time.Hour
)

type StaffRepository interface {
	Create(ctx context.Context, tx *gorm.DB, staff *Staff) error
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Staff, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Staff, error)
	Update(ctx context.Context, tx *gorm.DB, staff *Staff) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error

	GetDisplayName(ctx context.Context, tx *gorm.DB, id int) (string, error)
}

type staffRepository struct {
	cache database.CacheClient
}

func NewStaffRepository(cache database.CacheClient) StaffRepository {
	return &staffRepository{
		cache: cache,
	}
}

func (r *staffRepository) Create(ctx context.Context, tx *gorm.DB, staff *Staff) error {
	log := logger.NewWithContext(ctx, "staffRepository").Function("Create")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Create(staff).Error; err != nil {
		return log.ErrorWithType(ErrPersistence, "failed to create staff", "error", err, "name", staff.Name)
	}

	log.Info("Staff created", "id", staff.ID, "name", staff.Name)
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Staff, error) {
	log := logger.NewWithContext(ctx, "staffRepository").Function("GetByID")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var staff Staff
	if err := tx.WithContext(ctx).First(&staff, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, log.ErrorWithType(ErrPersistence, "failed to get staff", "error", err, "id", id)
	}

	return &staff, nil
}

func (r *staffRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Staff, error) {
	log := logger.NewWithContext(ctx, "staffRepository").Function("GetAll")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var staff []*Staff
	if err := tx.WithContext(ctx).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		return nil, log.ErrorWithType(ErrPersistence, "failed to get staff list", "error", err)
	}

	return staff, nil
}

func (r *staffRepository) Update(ctx context.Context, tx *gorm.DB, staff *Staff) error {
	log := logger.NewWithContext(ctx, "staffRepository").Function("Update")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Save(staff).Error; err != nil {
		return log.ErrorWithType(ErrPersistence, "failed to update staff", "error", err, "id", staff.ID)
	}

	r.clearNameCache(ctx, staff.ID)

	return nil
}

func (r *staffRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "staffRepository").Function("Delete")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Delete(&Staff{}, id).Error; err != nil {
		return log.ErrorWithType(ErrPersistence, "failed to delete staff", "error", err, "id", id)
	}

	r.clearNameCache(ctx, id)

	return nil
}

func (r *staffRepository) GetDisplayName(ctx context.Context, tx *gorm.DB, id int) (string, error) {
	log := logger.NewWithContext(ctx, "staffRepository").Function("GetDisplayName")

	cached, found, err := database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(STAFF_NAME_CACHE_PREFIX).
		GetString()
	if err != nil {
		log.Warn("failed to get staff name from cache", "id", id, "error", err)
	}

	if found {
		return cached, nil
	}

	staff, err := r.GetByID(ctx, tx, id)
	if err != nil {
		return "", err
	}
	if staff == nil {
		return "", log.ErrorWithType(ErrPersistence, "staff missing for name lookup", "id", id)
	}

	err = database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(STAFF_NAME_CACHE_PREFIX).
		WithValue(staff.Name).
		WithTTL(STAFF_NAME_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to cache staff name", "id", id, "error", err)
	}

	return staff.Name, nil
}

func (r *staffRepository) clearNameCache(ctx context.Context, id int) {
	log := logger.NewWithContext(ctx, "staffRepository").Function("clearNameCache")

	err := database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(STAFF_NAME_CACHE_PREFIX).
		Delete()
	if err != nil {
		log.Warn("failed to clear staff name cache", "id", id, "error", err)
	}
}
