package models

import "time"

type Cafeteria struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Logo      string `gorm:"size:255" json:"logo"`
	OpenHours string `gorm:"size:100" json:"open_hours"`

	// One cafeteria per admin.
	OwnerID uint `gorm:"uniqueIndex;not null" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
