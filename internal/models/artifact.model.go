package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Artifact struct {
	BaseModel
	Code         string           `gorm:"type:text;not null;uniqueIndex:idx_artifacts_code" json:"code"`
	Name         string           `gorm:"type:text;not null;index:idx_artifacts_name"       json:"name"`
	Origin       string           `gorm:"type:text"                                         json:"origin"`
	Era          string           `gorm:"type:text"                                         json:"era"`
	Condition    string           `gorm:"type:text"                                         json:"condition"`
	AcquiredAt   *time.Time       `gorm:"type:timestamp"                                    json:"acquiredAt,omitempty"`
	InsuredValue *decimal.Decimal `gorm:"type:decimal(14,2)"                                json:"insuredValue,omitempty"`
	OnDisplay    bool             `gorm:"not null;default:false"                            json:"onDisplay"`
}

func (a *Artifact) BeforeCreate(tx *gorm.DB) (err error) {
	if a.Code == "" {
		return gorm.ErrInvalidValue
	}
	if a.Name == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}

// DisplayName is the denormalized label used when enriching DTOs that
// reference this artifact.
func (a *Artifact) DisplayName() string {
	if a.Code == "" {
		return a.Name
	}
	return a.Name + " (" + a.Code + ")"
}
