package models

import (
	"encoding/json"
	"time"
)

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CafeteriaID uint      `gorm:"index;not null" json:"cafeteria_id"`
	Cafeteria   Cafeteria `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Image string  `gorm:"size:255" json:"image"`
	Tags  string  `gorm:"size:255" json:"tags"`

	SoldCount int `gorm:"default:0" json:"sold_count"`

	// Rating accumulator. Count and total only ever grow; the average is
	// derived at serialization time and never stored.
	RatingCount int     `gorm:"default:0" json:"rating_count"`
	RatingTotal float64 `gorm:"default:0" json:"rating_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *MenuItem) AverageRating() float64 {
	if m.RatingCount == 0 {
		return 0
	}
	return m.RatingTotal / float64(m.RatingCount)
}

func (m MenuItem) MarshalJSON() ([]byte, error) {
	type alias MenuItem
	return json.Marshal(struct {
		alias
		AverageRating float64 `json:"average_rating"`
	}{
		alias:         alias(m),
		AverageRating: m.AverageRating(),
	})
}
