package dto

import (
	"time"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

type OrderLineDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderListDTO struct {
	ID         uint           `json:"id"`
	Token      string         `json:"token"`
	Status     string         `json:"status"`
	PickupTime string         `json:"pickup_time"`
	Total      float64        `json:"total"`
	UserName   string         `json:"user_name,omitempty"`
	UserEmail  string         `json:"user_email,omitempty"`
	Items      []OrderLineDTO `json:"items"`
	CreatedAt  time.Time      `json:"created_at"`
}

func FromOrder(o models.Order, withUser bool) OrderListDTO {
	d := OrderListDTO{
		ID:         o.ID,
		Token:      o.Token,
		Status:     o.Status,
		PickupTime: o.PickupTime,
		Total:      o.Total,
		CreatedAt:  o.CreatedAt,
	}

	if withUser {
		d.UserName = o.User.Name
		d.UserEmail = o.User.Email
	}

	for _, line := range o.Items {
		d.Items = append(d.Items, OrderLineDTO{
			Name:     line.Name,
			Price:    line.UnitPrice,
			Quantity: line.Quantity,
		})
	}

	return d
}
