package models

import "gorm.io/gorm"

type Staff struct {
	BaseModel
	Name  string  `gorm:"type:text;not null"     json:"name"`
	Role  string  `gorm:"type:text;not null"     json:"role"`
	Email *string `gorm:"type:text;uniqueIndex"  json:"email,omitempty"`
	Phone *string `gorm:"type:text"              json:"phone,omitempty"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.Name == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}
