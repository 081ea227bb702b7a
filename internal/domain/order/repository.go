package order

import (
	"context"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

type Repository interface {
	// -------- Cafeteria --------
	GetCafeteriaByOwner(
		ctx context.Context,
		ownerID uint,
	) (*models.Cafeteria, error)

	// -------- Menu --------
	GetMenuItem(
		ctx context.Context,
		itemID uint,
	) (*models.MenuItem, error)

	IncrementSoldCount(
		ctx context.Context,
		itemID uint,
		quantity int,
	) error

	AddRating(
		ctx context.Context,
		itemID uint,
		rating int,
	) error

	// -------- Order --------
	CreateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	GetOrderForUser(
		ctx context.Context,
		orderID uint,
		userID uint,
	) (*models.Order, error)

	GetOrderForCafeteria(
		ctx context.Context,
		orderID uint,
		cafeteriaID uint,
	) (*models.Order, error)

	ListOrdersForCafeteria(
		ctx context.Context,
		cafeteriaID uint,
	) ([]models.Order, error)

	ListOrdersForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Order, error)

	UpdateOrderStatus(
		ctx context.Context,
		orderID uint,
		status Status,
	) error

	UpdateOrderFeedback(
		ctx context.Context,
		orderID uint,
		rating int,
		comment string,
	) error

	DeleteOrder(
		ctx context.Context,
		o *models.Order,
	) error
}
