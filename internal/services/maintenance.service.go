package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"musea/internal/database"
	"musea/internal/repositories"
	"musea/pkg/logger"
	. "musea/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrValidation marks malformed or missing input. Surfaced verbatim to
	// the caller, never retried.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks operations targeting an id that does not exist.
	ErrNotFound = errors.New("not found")
)

// Placeholders returned when enrichment lookups fail or do not apply. A
// failed enrichment never blocks returning the primary record.
const (
	UnknownArtifactName = "Unknown Artifact"
	UnassignedStaffName = "Unassigned"
)

// MaintenanceDTO is the transfer shape handed to the HTTP layer. Status is a
// plain string so the wire format stays decoupled from the internal state
// type; ArtifactName and StaffName are display-only and never persisted.
type MaintenanceDTO struct {
	ID           int              `json:"id"`
	ArtifactID   int              `json:"artifactId"`
	StaffID      *int             `json:"staffId,omitempty"`
	Kind         string           `json:"kind"`
	Description  string           `json:"description"`
	StartedAt    time.Time        `json:"startedAt"`
	CompletedAt  *time.Time       `json:"completedAt,omitempty"`
	Status       string           `json:"status"`
	Notes        *string          `json:"notes,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	ArtifactName string           `json:"artifactName"`
	StaffName    string           `json:"staffName"`
}

// MaintenanceStats aggregates the per-status counters.
type MaintenanceStats struct {
	Scheduled  int64 `json:"scheduled"`
	InProgress int64 `json:"inProgress"`
	Done       int64 `json:"done"`
}

type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	artifactRepo    repositories.ArtifactRepository
	staffRepo       repositories.StaffRepository
	db              database.DB
}

func NewMaintenanceService(repos repositories.Repository, db database.DB) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: repos.Maintenance,
		artifactRepo:    repos.Artifact,
		staffRepo:       repos.Staff,
		db:              db,
	}
}

// Validate applies the input rules shared by Create and Update. Staff is
// deliberately optional; assignment can happen any time before completion.
func (s *MaintenanceService) Validate(ctx context.Context, dto *MaintenanceDTO) error {
	log := logger.NewWithContext(ctx, "maintenanceService").Function("Validate")

	if dto == nil {
		return log.ErrorWithType(ErrValidation, "maintenance payload is required")
	}

	if dto.ArtifactID == 0 {
		return log.ErrorWithType(ErrValidation, "artifactId is required")
	}

	if strings.TrimSpace(dto.Description) == "" {
		return log.ErrorWithType(ErrValidation, "description is required")
	}

	return nil
}

func (s *MaintenanceService) Create(
	ctx context.Context,
	dto *MaintenanceDTO,
) (*MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceService").Function("Create")

	if err := s.Validate(ctx, dto); err != nil {
		return nil, err
	}

	record := s.toEntity(dto)

	if err := s.maintenanceRepo.Create(ctx, s.db.SQL, record); err != nil {
		return nil, err
	}

	log.Info("Maintenance record created", "id", record.ID, "artifactID", record.ArtifactID)

	return s.toDTO(ctx, record), nil
}

// Update is a full overwrite of the stored record. The path id wins over any
// id in the payload; clients cannot relocate a record. Lifecycle fields stay
// forward-only: a blank status leaves Status, CompletedAt, and Notes
// untouched, and a backward status move is rejected.
func (s *MaintenanceService) Update(
	ctx context.Context,
	id int,
	dto *MaintenanceDTO,
) (*MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceService").Function("Update")

	if err := s.Validate(ctx, dto); err != nil {
		return nil, err
	}

	existing, err := s.maintenanceRepo.GetByID(ctx, s.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, log.ErrorWithType(ErrNotFound, "maintenance record not found", "id", id)
	}

	record := s.toEntity(dto)
	record.ID = id
	record.CreatedAt = existing.CreatedAt

	if dto.Status == "" {
		// Lifecycle fields are owned by the transition operations; a payload
		// without a status leaves them untouched.
		record.Status = existing.Status
		record.CompletedAt = existing.CompletedAt
		record.Notes = existing.Notes
	} else {
		status, parseErr := parseStatus(dto.Status)
		if parseErr != nil {
			return nil, log.ErrorWithType(ErrValidation, "unknown maintenance status", "status", dto.Status)
		}
		if statusRank(status) < statusRank(existing.Status) {
			return nil, log.ErrorWithType(
				ErrValidation,
				"status may not move backward",
				"id", id,
				"from", existing.Status,
				"to", status,
			)
		}
		record.Status = status

		if record.Status == MaintenanceStatusDone && record.CompletedAt == nil {
			if existing.CompletedAt != nil {
				record.CompletedAt = existing.CompletedAt
			} else {
				now := time.Now()
				record.CompletedAt = &now
			}
		}
	}

	if !record.IsTerminal() {
		record.CompletedAt = nil
	}

	if err := s.maintenanceRepo.Update(ctx, s.db.SQL, record); err != nil {
		return nil, err
	}

	return s.toDTO(ctx, record), nil
}

// Delete delegates straight to the repository; deleting an absent id
// succeeds silently per the persistence contract.
func (s *MaintenanceService) Delete(ctx context.Context, id int) error {
	return s.maintenanceRepo.Delete(ctx, s.db.SQL, id)
}

func (s *MaintenanceService) Get(ctx context.Context, id int) (*MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceService").Function("Get")

	record, err := s.maintenanceRepo.GetByID(ctx, s.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, log.ErrorWithType(ErrNotFound, "maintenance record not found", "id", id)
	}

	return s.toDTO(ctx, record), nil
}

func (s *MaintenanceService) GetAll(ctx context.Context) ([]*MaintenanceDTO, error) {
	records, err := s.maintenanceRepo.GetAll(ctx, s.db.SQL)
	if err != nil {
		return nil, err
	}

	return s.toDTOs(ctx, records), nil
}

func (s *MaintenanceService) Start(ctx context.Context, id int) (*MaintenanceDTO, error) {
	return s.transition(ctx, id, "Start", func(record *MaintenanceRecord) error {
		return record.Start()
	})
}

func (s *MaintenanceService) Complete(
	ctx context.Context,
	id int,
	note string,
) (*MaintenanceDTO, error) {
	return s.transition(ctx, id, "Complete", func(record *MaintenanceRecord) error {
		return record.Complete(note)
	})
}

func (s *MaintenanceService) Cancel(
	ctx context.Context,
	id int,
	reason string,
) (*MaintenanceDTO, error) {
	return s.transition(ctx, id, "Cancel", func(record *MaintenanceRecord) error {
		return record.Cancel(reason)
	})
}

func (s *MaintenanceService) transition(
	ctx context.Context,
	id int,
	name string,
	apply func(*MaintenanceRecord) error,
) (*MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceService").Function(name)

	record, err := s.maintenanceRepo.GetByID(ctx, s.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, log.ErrorWithType(ErrNotFound, "maintenance record not found", "id", id)
	}

	if err := apply(record); err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			return nil, log.ErrorWithType(
				ErrValidation,
				"invalid status transition",
				"id", id,
				"status", record.Status,
			)
		}
		return nil, err
	}

	if err := s.maintenanceRepo.Update(ctx, s.db.SQL, record); err != nil {
		return nil, err
	}

	log.Info("Maintenance record transitioned", "id", id, "status", record.Status)

	return s.toDTO(ctx, record), nil
}

// RecordAction appends a free-form audit line to the notes, as opposed to
// Complete's terminal summary overwrite.
func (s *MaintenanceService) RecordAction(
	ctx context.Context,
	id int,
	action string,
) (*MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceService").Function("RecordAction")

	record, err := s.maintenanceRepo.GetByID(ctx, s.db.SQL, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, log.ErrorWithType(ErrNotFound, "maintenance record not found", "id", id)
	}

	record.AppendNote(action)

	if err := s.maintenanceRepo.Update(ctx, s.db.SQL, record); err != nil {
		return nil, err
	}

	return s.toDTO(ctx, record), nil
}

// ScheduleNew is the convenience constructor for ad-hoc routine maintenance:
// kind defaults to RUTIN and the start time is now.
func (s *MaintenanceService) ScheduleNew(
	ctx context.Context,
	artifactID int,
	staffID *int,
	description string,
) (*MaintenanceDTO, error) {
	return s.Create(ctx, &MaintenanceDTO{
		ArtifactID:  artifactID,
		StaffID:     staffID,
		Kind:        MaintenanceKindRoutine,
		Description: description,
		StartedAt:   time.Now(),
	})
}

func (s *MaintenanceService) ListByStatus(
	ctx context.Context,
	status string,
) ([]*MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceService").Function("ListByStatus")

	parsed, err := parseStatus(status)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "unknown maintenance status", "status", status)
	}

	records, err := s.maintenanceRepo.GetByStatus(ctx, s.db.SQL, parsed)
	if err != nil {
		return nil, err
	}

	return s.toDTOs(ctx, records), nil
}

func (s *MaintenanceService) ListByStaff(ctx context.Context, staffID int) ([]*MaintenanceDTO, error) {
	records, err := s.maintenanceRepo.GetByStaff(ctx, s.db.SQL, staffID)
	if err != nil {
		return nil, err
	}

	return s.toDTOs(ctx, records), nil
}

func (s *MaintenanceService) ListByArtifact(
	ctx context.Context,
	artifactID int,
) ([]*MaintenanceDTO, error) {
	records, err := s.maintenanceRepo.GetByArtifact(ctx, s.db.SQL, artifactID)
	if err != nil {
		return nil, err
	}

	return s.toDTOs(ctx, records), nil
}

func (s *MaintenanceService) ListBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]*MaintenanceDTO, error) {
	log := logger.NewWithContext(ctx, "maintenanceService").Function("ListBetween")

	if end.Before(start) {
		return nil, log.ErrorWithType(ErrValidation, "end must not precede start")
	}

	records, err := s.maintenanceRepo.GetByStartedBetween(ctx, s.db.SQL, start, end)
	if err != nil {
		return nil, err
	}

	return s.toDTOs(ctx, records), nil
}

func (s *MaintenanceService) ListUpcoming(ctx context.Context) ([]*MaintenanceDTO, error) {
	records, err := s.maintenanceRepo.GetUpcoming(ctx, s.db.SQL)
	if err != nil {
		return nil, err
	}

	return s.toDTOs(ctx, records), nil
}

func (s *MaintenanceService) Stats(ctx context.Context) (*MaintenanceStats, error) {
	stats := &MaintenanceStats{}

	var err error
	if stats.Scheduled, err = s.maintenanceRepo.CountByStatus(ctx, s.db.SQL, MaintenanceStatusScheduled); err != nil {
		return nil, err
	}
	if stats.InProgress, err = s.maintenanceRepo.CountByStatus(ctx, s.db.SQL, MaintenanceStatusInProgress); err != nil {
		return nil, err
	}
	if stats.Done, err = s.maintenanceRepo.CountByStatus(ctx, s.db.SQL, MaintenanceStatusDone); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *MaintenanceService) CountByStaff(ctx context.Context, staffID int) (int64, error) {
	return s.maintenanceRepo.CountByStaff(ctx, s.db.SQL, staffID)
}

func (s *MaintenanceService) CountByArtifact(ctx context.Context, artifactID int) (int64, error) {
	return s.maintenanceRepo.CountByArtifact(ctx, s.db.SQL, artifactID)
}

// statusRank orders the states for the forward-only rule. DONE is terminal.
func statusRank(status MaintenanceStatus) int {
	switch status {
	case MaintenanceStatusScheduled:
		return 0
	case MaintenanceStatusInProgress:
		return 1
	default:
		return 2
	}
}

func parseStatus(status string) (MaintenanceStatus, error) {
	switch MaintenanceStatus(strings.ToUpper(status)) {
	case MaintenanceStatusScheduled:
		return MaintenanceStatusScheduled, nil
	case MaintenanceStatusInProgress:
		return MaintenanceStatusInProgress, nil
	case MaintenanceStatusDone:
		return MaintenanceStatusDone, nil
	}
	return "", ErrValidation
}

// toEntity maps a DTO onto a fresh entity. The service owns conversion in
// both directions; repositories never see DTOs.
func (s *MaintenanceService) toEntity(dto *MaintenanceDTO) *MaintenanceRecord {
	status := MaintenanceStatus(dto.Status)
	if status == "" {
		status = MaintenanceStatusScheduled
	}

	return &MaintenanceRecord{
		ArtifactID:  dto.ArtifactID,
		StaffID:     dto.StaffID,
		Kind:        dto.Kind,
		Description: dto.Description,
		StartedAt:   dto.StartedAt,
		CompletedAt: dto.CompletedAt,
		Status:      status,
		Notes:       dto.Notes,
		Cost:        dto.Cost,
	}
}

// toDTO converts an entity and enriches it with display names. Enrichment
// failures fall back to placeholders; the warning is the only trace, so keep
// it loud enough to spot data-integrity drift.
func (s *MaintenanceService) toDTO(ctx context.Context, record *MaintenanceRecord) *MaintenanceDTO {
	log := logger.NewWithContext(ctx, "maintenanceService").Function("toDTO")

	dto := &MaintenanceDTO{
		ID:           record.ID,
		ArtifactID:   record.ArtifactID,
		StaffID:      record.StaffID,
		Kind:         record.Kind,
		Description:  record.Description,
		StartedAt:    record.StartedAt,
		CompletedAt:  record.CompletedAt,
		Status:       string(record.Status),
		Notes:        record.Notes,
		Cost:         record.Cost,
		ArtifactName: UnknownArtifactName,
		StaffName:    UnassignedStaffName,
	}

	artifactName, err := s.artifactRepo.GetDisplayName(ctx, s.db.SQL, record.ArtifactID)
	if err != nil {
		log.Warn(
			"artifact name enrichment failed, using placeholder",
			"recordID", record.ID,
			"artifactID", record.ArtifactID,
			"error", err,
		)
	} else {
		dto.ArtifactName = artifactName
	}

	if record.StaffID != nil {
		staffName, err := s.staffRepo.GetDisplayName(ctx, s.db.SQL, *record.StaffID)
		if err != nil {
			log.Warn(
				"staff name enrichment failed, using placeholder",
				"recordID", record.ID,
				"staffID", *record.StaffID,
				"error", err,
			)
		} else {
			dto.StaffName = staffName
		}
	}

	return dto
}

func (s *MaintenanceService) toDTOs(
	ctx context.Context,
	records []*MaintenanceRecord,
) []*MaintenanceDTO {
	dtos := make([]*MaintenanceDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, s.toDTO(ctx, record))
	}
	return dtos
}
