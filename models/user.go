package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"not null" json:"-"` // bcrypt hash
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Phone           string    `gorm:"size:20" json:"phone,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Role            string    `gorm:"size:20;default:'user';not null" json:"role"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings        []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
