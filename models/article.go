package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TravelGuideArticle struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Excerpt       string     `json:"excerpt,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	AuthorID      string     `gorm:"type:uuid;not null" json:"authorId"`
	DestinationID *string    `gorm:"type:uuid" json:"destinationId,omitempty"`
	Published     bool       `gorm:"default:false" json:"published"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (a *TravelGuideArticle) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
