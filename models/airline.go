package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Airline struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Code    string `gorm:"size:10;uniqueIndex;not null" json:"code"`
	LogoURL string `json:"logoUrl,omitempty"`
}

func (a *Airline) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
