package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Destination struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	City            string    `gorm:"not null;index" json:"city"`
	State           string    `gorm:"not null" json:"state"`
	Country         string    `gorm:"not null;default:'India'" json:"country"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	PopularityScore int       `gorm:"default:0" json:"popularityScore"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
