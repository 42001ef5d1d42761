package repositories

import (
	"context"
	"errors"
	"time"

	"musea/internal/database"
)

// ErrPersistence wraps storage-layer failures so callers can distinguish them
// from validation and not-found conditions. The underlying error is logged at
// the point of failure.
var ErrPersistence = errors.New("persistence failure")

// queryTimeout bounds every blocking database call. The storage client
// enforces nothing by default.
const queryTimeout = 5 * time.Second

func queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

type Repository struct {
	Maintenance MaintenanceRepository
	Artifact    ArtifactRepository
	Staff       StaffRepository
	Exhibition  ExhibitionRepository
	Feedback    FeedbackRepository
}

func New(db database.DB) Repository {
	return Repository{
		Maintenance: NewMaintenanceRepository(),
		Artifact:    NewArtifactRepository(db.Cache.Lookup), // display names cached for enrichment
		Staff:       NewStaffRepository(db.Cache.Lookup),
		Exhibition:  NewExhibitionRepository(),
		Feedback:    NewFeedbackRepository(),
	}
}
