package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Exhibition struct {
	BaseModel
	Name      string         `gorm:"type:text;not null"                   json:"name"`
	Theme     string         `gorm:"type:text"                            json:"theme"`
	Location  string         `gorm:"type:text"                            json:"location"`
	StartDate datatypes.Date `gorm:"not null;index:idx_exhibitions_start" json:"startDate"`
	EndDate   datatypes.Date `gorm:"not null"                             json:"endDate"`

	Artifacts []*Artifact `gorm:"many2many:exhibition_artifacts" json:"artifacts,omitempty"`
}

func (e *Exhibition) BeforeCreate(tx *gorm.DB) (err error) {
	if e.Name == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}
