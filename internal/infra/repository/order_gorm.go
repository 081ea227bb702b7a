package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/SmartCafeteriaHQ/cafeteria-api/internal/domain/order"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Cafeteria
// --------------------------------------------------

func (r *OrderGormRepository) GetCafeteriaByOwner(
	ctx context.Context,
	ownerID uint,
) (*models.Cafeteria, error) {

	var caf models.Cafeteria
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&caf).Error; err != nil {
		return nil, err
	}
	return &caf, nil
}

// --------------------------------------------------
// Menu
// --------------------------------------------------

func (r *OrderGormRepository) GetMenuItem(
	ctx context.Context,
	itemID uint,
) (*models.MenuItem, error) {

	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderGormRepository) IncrementSoldCount(
	ctx context.Context,
	itemID uint,
	quantity int,
) error {
	return r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", itemID).
		UpdateColumn("sold_count", gorm.Expr("sold_count + ?", quantity)).
		Error
}

// Rating accumulator only ever grows; a single expression update keeps the
// increment atomic per row.
func (r *OrderGormRepository) AddRating(
	ctx context.Context,
	itemID uint,
	rating int,
) error {
	return r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", itemID).
		UpdateColumns(map[string]interface{}{
			"rating_count": gorm.Expr("rating_count + 1"),
			"rating_total": gorm.Expr("rating_total + ?", rating),
		}).Error
}

// --------------------------------------------------
// Order
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderGormRepository) GetOrderForUser(
	ctx context.Context,
	orderID uint,
	userID uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("Cafeteria").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) GetOrderForCafeteria(
	ctx context.Context,
	orderID uint,
	cafeteriaID uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("User").
		Where("id = ? AND cafeteria_id = ?", orderID, cafeteriaID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) ListOrdersForCafeteria(
	ctx context.Context,
	cafeteriaID uint,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("User").
		Where("cafeteria_id = ?", cafeteriaID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrdersForUser(
	ctx context.Context,
	userID uint,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Column-level updates: status and feedback are the only mutable fields
// after creation, and touching them must not re-save loaded associations.
func (r *OrderGormRepository) UpdateOrderStatus(
	ctx context.Context,
	orderID uint,
	status domain.Status,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", string(status)).
		Error
}

func (r *OrderGormRepository) UpdateOrderFeedback(
	ctx context.Context,
	orderID uint,
	rating int,
	comment string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"feedback_rating":  rating,
			"feedback_comment": comment,
		}).Error
}

func (r *OrderGormRepository) DeleteOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).
		Select("Items").
		Delete(o).Error
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
