package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusDone       MaintenanceStatus = "DONE"
)

// Common maintenance kinds. Kind is free text; these are the values the
// curators actually use.
const (
	MaintenanceKindRoutine    = "RUTIN"
	MaintenanceKindPreventive = "PREVENTIF"
	MaintenanceKindCorrective = "KOREKTIF"
)

// CancelledNotePrefix tags the notes of a record that reached DONE through
// cancellation rather than completion.
const CancelledNotePrefix = "CANCELLED: "

// ErrInvalidTransition is returned when a status transition is requested from
// a state that does not allow it. DONE is terminal.
var ErrInvalidTransition = errors.New("invalid maintenance status transition")

type MaintenanceRecord struct {
	BaseModel
	ArtifactID  int               `gorm:"not null;index:idx_maintenance_records_artifact"      json:"artifactId"`
	StaffID     *int              `gorm:"index:idx_maintenance_records_staff"                  json:"staffId,omitempty"`
	Kind        string            `gorm:"type:text;not null"                                   json:"kind"`
	Description string            `gorm:"type:text;not null"                                   json:"description"`
	StartedAt   time.Time         `gorm:"type:timestamp;not null;index:idx_maintenance_records_started_at" json:"startedAt"`
	CompletedAt *time.Time        `gorm:"type:timestamp"                                       json:"completedAt,omitempty"`
	Status      MaintenanceStatus `gorm:"type:text;not null;index:idx_maintenance_records_status" json:"status"`
	Notes       *string           `gorm:"type:text"                                            json:"notes,omitempty"`
	Cost        *decimal.Decimal  `gorm:"type:decimal(12,2)"                                   json:"cost,omitempty"`

	// Relationships
	Artifact *Artifact `gorm:"foreignKey:ArtifactID" json:"artifact,omitempty"`
	Staff    *Staff    `gorm:"foreignKey:StaffID"    json:"staff,omitempty"`
}

func (mr *MaintenanceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if mr.ArtifactID == 0 {
		return gorm.ErrInvalidValue
	}
	if mr.Description == "" {
		return gorm.ErrInvalidValue
	}
	if mr.StartedAt.IsZero() {
		mr.StartedAt = time.Now()
	}
	if mr.Status == "" {
		mr.Status = MaintenanceStatusScheduled
	}
	return nil
}

func (mr *MaintenanceRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	if mr.ArtifactID == 0 {
		return gorm.ErrInvalidValue
	}
	if mr.Description == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}

// IsTerminal reports whether no further status transition is allowed.
func (mr *MaintenanceRecord) IsTerminal() bool {
	return mr.Status == MaintenanceStatusDone
}

// Start moves a SCHEDULED record to IN_PROGRESS. Any other starting state is
// rejected, including a repeated Start on an IN_PROGRESS record.
func (mr *MaintenanceRecord) Start() error {
	if mr.Status != MaintenanceStatusScheduled {
		return ErrInvalidTransition
	}

	mr.Status = MaintenanceStatusInProgress
	return nil
}

// Complete moves the record to DONE, overwrites the notes with the terminal
// summary, and stamps the completion time. Rejected once terminal.
func (mr *MaintenanceRecord) Complete(note string) error {
	if mr.IsTerminal() {
		return ErrInvalidTransition
	}

	now := time.Now()
	mr.Status = MaintenanceStatusDone
	mr.Notes = &note
	mr.CompletedAt = &now
	return nil
}

// Cancel moves the record to DONE from any non-terminal state, tagging the
// notes with the cancelled prefix. Cancellation shares the terminal state with
// completion; nothing downstream distinguishes the two beyond the prefix.
func (mr *MaintenanceRecord) Cancel(reason string) error {
	if mr.IsTerminal() {
		return ErrInvalidTransition
	}

	now := time.Now()
	notes := CancelledNotePrefix + reason
	mr.Status = MaintenanceStatusDone
	mr.Notes = &notes
	mr.CompletedAt = &now
	return nil
}

// AppendNote adds a line to the notes audit trail, in contrast with
// Complete's overwrite semantics. Allowed in any state.
func (mr *MaintenanceRecord) AppendNote(action string) {
	if mr.Notes == nil || *mr.Notes == "" {
		mr.Notes = &action
		return
	}

	combined := *mr.Notes + "\n" + action
	mr.Notes = &combined
}
