package models

import "time"

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CafeteriaID uint      `gorm:"index;not null" json:"cafeteria_id"`
	Cafeteria   Cafeteria `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	PickupTime string `gorm:"size:50" json:"pickup_time"`

	// Customer-facing pickup code, 8 chars from [A-Z0-9].
	Token string `gorm:"size:8;uniqueIndex;not null" json:"token"`

	Status string  `gorm:"size:20;default:'pending'" json:"status"`
	Total  float64 `gorm:"not null" json:"total"`

	FeedbackRating  *int   `json:"feedback_rating"`
	FeedbackComment string `gorm:"size:500" json:"feedback_comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"order_id"`

	// Nullable on purpose: deleting a menu item detaches historical lines
	// instead of blocking the delete or erasing order history.
	MenuItemID *uint    `gorm:"index" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"menu_item"`

	Quantity int `gorm:"not null" json:"quantity"`

	// Catalog name and price at placement time. Later edits or deletion of
	// the menu item must not change how historical orders render.
	Name      string  `gorm:"size:100;not null" json:"name"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}
