package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Feedback struct {
	BaseModel
	VisitorName string         `gorm:"type:text;not null" json:"visitorName"`
	Rating      int            `gorm:"not null"           json:"rating"`
	Comment     *string        `gorm:"type:text"          json:"comment,omitempty"`
	VisitedOn   datatypes.Date `gorm:"not null"           json:"visitedOn"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.VisitorName == "" {
		return gorm.ErrInvalidValue
	}
	if f.Rating < MinRating || f.Rating > MaxRating {
		return gorm.ErrInvalidValue
	}
	return nil
}
