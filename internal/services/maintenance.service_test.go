package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"musea/internal/database"
	"musea/internal/repositories"
	. "musea/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeMaintenanceRepo is an in-memory MaintenanceRepository. The tx argument
// is ignored; these tests exercise service semantics, not SQL.
type fakeMaintenanceRepo struct {
	records map[int]*MaintenanceRecord
	nextID  int
	failAll bool
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{
		records: make(map[int]*MaintenanceRecord),
		nextID:  1,
	}
}

func (f *fakeMaintenanceRepo) Create(ctx context.Context, tx *gorm.DB, record *MaintenanceRecord) error {
	if f.failAll {
		return repositories.ErrPersistence
	}
	if err := record.BeforeCreate(nil); err != nil {
		return repositories.ErrPersistence
	}
	record.ID = f.nextID
	f.nextID++
	clone := *record
	f.records[record.ID] = &clone
	return nil
}

func (f *fakeMaintenanceRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*MaintenanceRecord, error) {
	if f.failAll {
		return nil, repositories.ErrPersistence
	}
	record, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (f *fakeMaintenanceRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*MaintenanceRecord, error) {
	var records []*MaintenanceRecord
	for id := 1; id < f.nextID; id++ {
		if record, ok := f.records[id]; ok {
			clone := *record
			records = append(records, &clone)
		}
	}
	return records, nil
}

func (f *fakeMaintenanceRepo) Update(ctx context.Context, tx *gorm.DB, record *MaintenanceRecord) error {
	if f.failAll {
		return repositories.ErrPersistence
	}
	clone := *record
	f.records[record.ID] = &clone
	return nil
}

func (f *fakeMaintenanceRepo) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	delete(f.records, id)
	return nil
}

func (f *fakeMaintenanceRepo) GetByStatus(ctx context.Context, tx *gorm.DB, status MaintenanceStatus) ([]*MaintenanceRecord, error) {
	all, _ := f.GetAll(ctx, tx)
	var filtered []*MaintenanceRecord
	for _, record := range all {
		if record.Status == status {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (f *fakeMaintenanceRepo) GetByStaff(ctx context.Context, tx *gorm.DB, staffID int) ([]*MaintenanceRecord, error) {
	all, _ := f.GetAll(ctx, tx)
	var filtered []*MaintenanceRecord
	for _, record := range all {
		if record.StaffID != nil && *record.StaffID == staffID {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (f *fakeMaintenanceRepo) GetByArtifact(ctx context.Context, tx *gorm.DB, artifactID int) ([]*MaintenanceRecord, error) {
	all, _ := f.GetAll(ctx, tx)
	var filtered []*MaintenanceRecord
	for _, record := range all {
		if record.ArtifactID == artifactID {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (f *fakeMaintenanceRepo) GetByStartedBetween(ctx context.Context, tx *gorm.DB, start, end time.Time) ([]*MaintenanceRecord, error) {
	all, _ := f.GetAll(ctx, tx)
	var filtered []*MaintenanceRecord
	for _, record := range all {
		if !record.StartedAt.Before(start) && !record.StartedAt.After(end) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (f *fakeMaintenanceRepo) GetUpcoming(ctx context.Context, tx *gorm.DB) ([]*MaintenanceRecord, error) {
	all, _ := f.GetAll(ctx, tx)
	var filtered []*MaintenanceRecord
	for _, record := range all {
		if record.Status == MaintenanceStatusScheduled && record.StartedAt.After(time.Now()) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (f *fakeMaintenanceRepo) CountByStatus(ctx context.Context, tx *gorm.DB, status MaintenanceStatus) (int64, error) {
	records, _ := f.GetByStatus(ctx, tx, status)
	return int64(len(records)), nil
}

func (f *fakeMaintenanceRepo) CountByStaff(ctx context.Context, tx *gorm.DB, staffID int) (int64, error) {
	records, _ := f.GetByStaff(ctx, tx, staffID)
	return int64(len(records)), nil
}

func (f *fakeMaintenanceRepo) CountByArtifact(ctx context.Context, tx *gorm.DB, artifactID int) (int64, error) {
	records, _ := f.GetByArtifact(ctx, tx, artifactID)
	return int64(len(records)), nil
}

// fakeArtifactRepo serves display-name lookups from a map and fails for
// unknown ids, which exercises the enrichment fallback.
type fakeArtifactRepo struct {
	names map[int]string
}

func (f *fakeArtifactRepo) Create(ctx context.Context, tx *gorm.DB, artifact *Artifact) error {
	return nil
}

func (f *fakeArtifactRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Artifact, error) {
	return nil, nil
}

func (f *fakeArtifactRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*Artifact, error) {
	return nil, nil
}

func (f *fakeArtifactRepo) Update(ctx context.Context, tx *gorm.DB, artifact *Artifact) error {
	return nil
}

func (f *fakeArtifactRepo) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	return nil
}

func (f *fakeArtifactRepo) SearchByName(ctx context.Context, tx *gorm.DB, name string) ([]*Artifact, error) {
	return nil, nil
}

func (f *fakeArtifactRepo) GetByCondition(ctx context.Context, tx *gorm.DB, condition string) ([]*Artifact, error) {
	return nil, nil
}

func (f *fakeArtifactRepo) GetDisplayName(ctx context.Context, tx *gorm.DB, id int) (string, error) {
	name, ok := f.names[id]
	if !ok {
		return "", errors.New("lookup failed")
	}
	return name, nil
}

type fakeStaffRepo struct {
	names map[int]string
}

func (f *fakeStaffRepo) Create(ctx context.Context, tx *gorm.DB, staff *Staff) error { return nil }

func (f *fakeStaffRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Staff, error) {
	return nil, nil
}

func (f *fakeStaffRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*Staff, error) { return nil, nil }

func (f *fakeStaffRepo) Update(ctx context.Context, tx *gorm.DB, staff *Staff) error { return nil }

func (f *fakeStaffRepo) Delete(ctx context.Context, tx *gorm.DB, id int) error { return nil }

func (f *fakeStaffRepo) GetDisplayName(ctx context.Context, tx *gorm.DB, id int) (string, error) {
	name, ok := f.names[id]
	if !ok {
		return "", errors.New("lookup failed")
	}
	return name, nil
}

func newTestService() (*MaintenanceService, *fakeMaintenanceRepo) {
	maintenanceRepo := newFakeMaintenanceRepo()
	service := NewMaintenanceService(repositories.Repository{
		Maintenance: maintenanceRepo,
		Artifact:    &fakeArtifactRepo{names: map[int]string{42: "Bronze Kris (ARK-001)", 7: "Celadon Vase (ARK-007)"}},
		Staff:       &fakeStaffRepo{names: map[int]string{3: "Siti Rahma"}},
	}, database.DB{})
	return service, maintenanceRepo
}

func TestMaintenanceService_Create(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	t.Run("valid input gets scheduled status and id", func(t *testing.T) {
		startedAt := time.Now().Add(-time.Hour)
		dto, err := service.Create(ctx, &MaintenanceDTO{
			ArtifactID:  42,
			Kind:        MaintenanceKindRoutine,
			Description: "Dust cabinets",
			StartedAt:   startedAt,
		})

		require.NoError(t, err)
		assert.NotZero(t, dto.ID)
		assert.Equal(t, string(MaintenanceStatusScheduled), dto.Status)
		assert.Nil(t, dto.CompletedAt)
		assert.Nil(t, dto.StaffID)
		assert.Equal(t, "Bronze Kris (ARK-001)", dto.ArtifactName)
		assert.Equal(t, UnassignedStaffName, dto.StaffName)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			dto  *MaintenanceDTO
		}{
			{name: "nil payload", dto: nil},
			{name: "missing artifact", dto: &MaintenanceDTO{Description: "Dust cabinets"}},
			{name: "blank description", dto: &MaintenanceDTO{ArtifactID: 42, Description: "   "}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Create(ctx, tt.dto)
				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})

	t.Run("staff may be absent", func(t *testing.T) {
		dto, err := service.Create(ctx, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Inspect hinges",
		})

		require.NoError(t, err)
		assert.Nil(t, dto.StaffID)
	})
}

func TestMaintenanceService_Lifecycle(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, &MaintenanceDTO{
		ArtifactID:  42,
		Kind:        MaintenanceKindPreventive,
		Description: "Rewax display case",
		StartedAt:   time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	t.Run("start then complete", func(t *testing.T) {
		started, err := service.Start(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, string(MaintenanceStatusInProgress), started.Status)

		done, err := service.Complete(ctx, created.ID, "Done, all clean")
		require.NoError(t, err)
		assert.Equal(t, string(MaintenanceStatusDone), done.Status)
		require.NotNil(t, done.Notes)
		assert.Equal(t, "Done, all clean", *done.Notes)
		assert.NotNil(t, done.CompletedAt)
	})

	t.Run("start on done record is a validation error", func(t *testing.T) {
		_, err := service.Start(ctx, created.ID)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("transitions on unknown id return not found", func(t *testing.T) {
		_, err := service.Start(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.Complete(ctx, 9999, "note")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMaintenanceService_Cancel(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, &MaintenanceDTO{
		ArtifactID:  42,
		Description: "Fumigate textile storage",
	})
	require.NoError(t, err)

	cancelled, err := service.Cancel(ctx, created.ID, "artifact on loan")
	require.NoError(t, err)

	assert.Equal(t, string(MaintenanceStatusDone), cancelled.Status)
	require.NotNil(t, cancelled.Notes)
	assert.Equal(t, "CANCELLED: artifact on loan", *cancelled.Notes)
	assert.NotNil(t, cancelled.CompletedAt)
}

func TestMaintenanceService_RecordAction(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, &MaintenanceDTO{
		ArtifactID:  42,
		Description: "Polish silverware",
	})
	require.NoError(t, err)

	first, err := service.RecordAction(ctx, created.ID, "A")
	require.NoError(t, err)
	require.NotNil(t, first.Notes)
	assert.Equal(t, "A", *first.Notes)

	second, err := service.RecordAction(ctx, created.ID, "B")
	require.NoError(t, err)
	require.NotNil(t, second.Notes)
	assert.Equal(t, "A\nB", *second.Notes)
}

func TestMaintenanceService_ScheduleNew(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	dto, err := service.ScheduleNew(ctx, 7, nil, "Check humidity")
	require.NoError(t, err)

	assert.Equal(t, MaintenanceKindRoutine, dto.Kind)
	assert.Equal(t, string(MaintenanceStatusScheduled), dto.Status)
	assert.WithinDuration(t, time.Now(), dto.StartedAt, time.Second)
	assert.Nil(t, dto.StaffID)
}

func TestMaintenanceService_Update(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, &MaintenanceDTO{
		ArtifactID:  42,
		Description: "Original description",
	})
	require.NoError(t, err)

	t.Run("path id wins over payload id", func(t *testing.T) {
		updated, err := service.Update(ctx, created.ID, &MaintenanceDTO{
			ID:          9999,
			ArtifactID:  42,
			Description: "Updated description",
			StartedAt:   created.StartedAt,
			Status:      created.Status,
		})

		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Updated description", updated.Description)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		_, err := service.Update(ctx, 9999, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Anything",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank status preserves completed lifecycle fields", func(t *testing.T) {
		record, err := service.Create(ctx, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Treat bronze disease",
		})
		require.NoError(t, err)

		_, err = service.Complete(ctx, record.ID, "all clean")
		require.NoError(t, err)

		updated, err := service.Update(ctx, record.ID, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "edited description",
		})
		require.NoError(t, err)

		assert.Equal(t, "edited description", updated.Description)
		assert.Equal(t, string(MaintenanceStatusDone), updated.Status)
		require.NotNil(t, updated.CompletedAt)
		require.NotNil(t, updated.Notes)
		assert.Equal(t, "all clean", *updated.Notes)

		stored, err := service.Get(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, string(MaintenanceStatusDone), stored.Status)
		assert.NotNil(t, stored.CompletedAt)
	})

	t.Run("backward status move is rejected", func(t *testing.T) {
		record, err := service.Create(ctx, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Reframe lithograph",
		})
		require.NoError(t, err)

		_, err = service.Complete(ctx, record.ID, "done")
		require.NoError(t, err)

		_, err = service.Update(ctx, record.ID, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Reframe lithograph",
			Status:      string(MaintenanceStatusScheduled),
		})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = service.Update(ctx, record.ID, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Reframe lithograph",
			Status:      string(MaintenanceStatusInProgress),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("forward move to done stamps completion when missing", func(t *testing.T) {
		record, err := service.Create(ctx, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Seal display case",
		})
		require.NoError(t, err)

		updated, err := service.Update(ctx, record.ID, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Seal display case",
			Status:      string(MaintenanceStatusDone),
		})
		require.NoError(t, err)

		assert.Equal(t, string(MaintenanceStatusDone), updated.Status)
		require.NotNil(t, updated.CompletedAt)
		assert.WithinDuration(t, time.Now(), *updated.CompletedAt, time.Second)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		_, err := service.Update(ctx, created.ID, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Anything",
			Status:      "PAUSED",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("completion timestamp cleared for non terminal status", func(t *testing.T) {
		record, err := service.Create(ctx, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Vacuum tapestry",
		})
		require.NoError(t, err)

		completedAt := time.Now()
		updated, err := service.Update(ctx, record.ID, &MaintenanceDTO{
			ArtifactID:  42,
			Description: "Vacuum tapestry",
			Status:      string(MaintenanceStatusInProgress),
			CompletedAt: &completedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, string(MaintenanceStatusInProgress), updated.Status)
		assert.Nil(t, updated.CompletedAt)
	})
}

func TestMaintenanceService_DeleteAbsentIDSucceeds(t *testing.T) {
	service, _ := newTestService()

	assert.NoError(t, service.Delete(context.Background(), 12345))
}

func TestMaintenanceService_GetNotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMaintenanceService_EnrichmentFallback(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	// artifact 500 is unknown to the fake lookup, so enrichment fails and
	// the placeholder is used; the record itself still comes back.
	staffID := 999
	dto, err := service.Create(ctx, &MaintenanceDTO{
		ArtifactID:  500,
		StaffID:     &staffID,
		Description: "Clean unknown piece",
	})

	require.NoError(t, err)
	assert.Equal(t, UnknownArtifactName, dto.ArtifactName)
	assert.Equal(t, UnassignedStaffName, dto.StaffName)
}

func TestMaintenanceService_DTORoundTrip(t *testing.T) {
	service, _ := newTestService()

	staffID := 3
	completedAt := time.Now()
	notes := "inspected"
	original := &MaintenanceDTO{
		ArtifactID:  42,
		StaffID:     &staffID,
		Kind:        MaintenanceKindCorrective,
		Description: "Repair frame",
		StartedAt:   time.Now().Add(-2 * time.Hour),
		CompletedAt: &completedAt,
		Status:      string(MaintenanceStatusDone),
		Notes:       &notes,
	}

	roundTripped := service.toDTO(context.Background(), service.toEntity(original))

	assert.Equal(t, original.ArtifactID, roundTripped.ArtifactID)
	assert.Equal(t, original.StaffID, roundTripped.StaffID)
	assert.Equal(t, original.Kind, roundTripped.Kind)
	assert.Equal(t, original.Description, roundTripped.Description)
	assert.Equal(t, original.StartedAt, roundTripped.StartedAt)
	assert.Equal(t, original.CompletedAt, roundTripped.CompletedAt)
	assert.Equal(t, original.Status, roundTripped.Status)
	assert.Equal(t, original.Notes, roundTripped.Notes)

	// display names are recomputed, not round-tripped
	assert.Equal(t, "Bronze Kris (ARK-001)", roundTripped.ArtifactName)
	assert.Equal(t, "Siti Rahma", roundTripped.StaffName)
}

func TestMaintenanceService_ListByStatus(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Create(ctx, &MaintenanceDTO{ArtifactID: 42, Description: "One"})
	require.NoError(t, err)
	created, err := service.Create(ctx, &MaintenanceDTO{ArtifactID: 7, Description: "Two"})
	require.NoError(t, err)
	_, err = service.Complete(ctx, created.ID, "done")
	require.NoError(t, err)

	scheduled, err := service.ListByStatus(ctx, "scheduled")
	require.NoError(t, err)
	assert.Len(t, scheduled, 1)

	done, err := service.ListByStatus(ctx, "DONE")
	require.NoError(t, err)
	assert.Len(t, done, 1)

	_, err = service.ListByStatus(ctx, "bogus")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMaintenanceService_Stats(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Create(ctx, &MaintenanceDTO{ArtifactID: 42, Description: "One"})
	require.NoError(t, err)
	second, err := service.Create(ctx, &MaintenanceDTO{ArtifactID: 42, Description: "Two"})
	require.NoError(t, err)
	_, err = service.Start(ctx, second.ID)
	require.NoError(t, err)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Scheduled)
	assert.Equal(t, int64(1), stats.InProgress)
	assert.Equal(t, int64(0), stats.Done)
}

func TestMaintenanceService_ListBetweenValidatesWindow(t *testing.T) {
	service, _ := newTestService()

	now := time.Now()
	_, err := service.ListBetween(context.Background(), now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrValidation)
}
