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
	ARTIFACT_NAME_CACHE_PREFIX = "artifact_name"
	ARTIFACT_NAME_CACHE_EXPIRY = 24 * time.Hour
)

type ArtifactRepository interface {
	Create(ctx context.Context, tx *gorm.DB, artifact *Artifact) error
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Artifact, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Artifact, error)
	Update(ctx context.Context, tx *gorm.DB, artifact *Artifact) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
	SearchByName(ctx context.Context, tx *gorm.DB, name string) ([]*Artifact, error)
	GetByCondition(ctx context.Context, tx *gorm.DB, condition string) ([]*Artifact, error)

	// GetDisplayName serves DTO enrichment through the lookup cache.
	GetDisplayName(ctx context.Context, tx *gorm.DB, id int) (string, error)
}

type artifactRepository struct {
	cache database.CacheClient
}

func NewArtifactRepository(cache database.CacheClient) ArtifactRepository {
	return &artifactRepository{
		cache: cache,
	}
}

func (r *artifactRepository) Create(ctx context.Context, tx *gorm.DB, artifact *Artifact) error {
	log := logger.NewWithContext(ctx, "artifactRepository").Function("Create")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Create(artifact).Error; err != nil {
		return log.ErrorWithType(
			ErrPersistence,
			"failed to create artifact",
			"error", err,
			"code", artifact.Code,
		)
	}

	log.Info("Artifact created", "id", artifact.ID, "code", artifact.Code)
	return nil
}

func (r *artifactRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Artifact, error) {
	log := logger.NewWithContext(ctx, "artifactRepository").Function("GetByID")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var artifact Artifact
	if err := tx.WithContext(ctx).First(&artifact, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, log.ErrorWithType(ErrPersistence, "failed to get artifact", "error", err, "id", id)
	}

	return &artifact, nil
}

func (r *artifactRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Artifact, error) {
	log := logger.NewWithContext(ctx, "artifactRepository").Function("GetAll")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var artifacts []*Artifact
	if err := tx.WithContext(ctx).
		Order("id ASC").
		Find(&artifacts).Error; err != nil {
		return nil, log.ErrorWithType(ErrPersistence, "failed to get artifacts", "error", err)
	}

	return artifacts, nil
}

func (r *artifactRepository) Update(ctx context.Context, tx *gorm.DB, artifact *Artifact) error {
	log := logger.NewWithContext(ctx, "artifactRepository").Function("Update")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Save(artifact).Error; err != nil {
		return log.ErrorWithType(
			ErrPersistence,
			"failed to update artifact",
			"error", err,
			"id", artifact.ID,
		)
	}

	r.clearNameCache(ctx, artifact.ID)

	return nil
}

func (r *artifactRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "artifactRepository").Function("Delete")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Delete(&Artifact{}, id).Error; err != nil {
		return log.ErrorWithType(ErrPersistence, "failed to delete artifact", "error", err, "id", id)
	}

	r.clearNameCache(ctx, id)

	return nil
}

func (r *artifactRepository) SearchByName(
	ctx context.Context,
	tx *gorm.DB,
	name string,
) ([]*Artifact, error) {
	log := logger.NewWithContext(ctx, "artifactRepository").Function("SearchByName")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var artifacts []*Artifact
	if err := tx.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("name ASC").
		Find(&artifacts).Error; err != nil {
		return nil, log.ErrorWithType(
			ErrPersistence,
			"failed to search artifacts by name",
			"error", err,
			"name", name,
		)
	}

	return artifacts, nil
}

func (r *artifactRepository) GetByCondition(
	ctx context.Context,
	tx *gorm.DB,
	condition string,
) ([]*Artifact, error) {
	log := logger.NewWithContext(ctx, "artifactRepository").Function("GetByCondition")

	ctx, cancel := queryContext(ctx)
	defer cancel()

	var artifacts []*Artifact
	if err := tx.WithContext(ctx).
		Where("condition = ?", condition).
		Order("name ASC").
		Find(&artifacts).Error; err != nil {
		return nil, log.ErrorWithType(
			ErrPersistence,
			"failed to get artifacts by condition",
			"error", err,
			"condition", condition,
		)
	}

	return artifacts, nil
}

func (r *artifactRepository) GetDisplayName(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) (string, error) {
	log := logger.NewWithContext(ctx, "artifactRepository").Function("GetDisplayName")

	cached, found, err := database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(ARTIFACT_NAME_CACHE_PREFIX).
		GetString()
	if err != nil {
		log.Warn("failed to get artifact name from cache", "id", id, "error", err)
	}

	if found {
		return cached, nil
	}

	artifact, err := r.GetByID(ctx, tx, id)
	if err != nil {
		return "", err
	}
	if artifact == nil {
		return "", log.ErrorWithType(ErrPersistence, "artifact missing for name lookup", "id", id)
	}

	name := artifact.DisplayName()

	err = database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(ARTIFACT_NAME_CACHE_PREFIX).
		WithValue(name).
		WithTTL(ARTIFACT_NAME_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to cache artifact name", "id", id, "error", err)
	}

	return name, nil
}

func (r *artifactRepository) clearNameCache(ctx context.Context, id int) {
	log := logger.NewWithContext(ctx, "artifactRepository").Function("clearNameCache")

	err := database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(ARTIFACT_NAME_CACHE_PREFIX).
		Delete()
	if err != nil {
		log.Warn("failed to clear artifact name cache", "id", id, "error", err)
	}
}
