package order

import (
	"context"
	"fmt"
	"math"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/audit"
	domain "github.com/SmartCafeteriaHQ/cafeteria-api/internal/domain/order"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type LineInput struct {
	ItemID   uint
	Quantity int
}

type PlaceOrderInput struct {
	UserID      uint
	CafeteriaID uint
	Items       []LineInput
	PickupTime  string
	Total       float64
}

// ======================================================
// USE CASE
// ======================================================

type PlaceOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPlaceOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PlaceOrder {
	return &PlaceOrder{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates the order, then increments each line's sold count as a
// post-commit step. The increments are not transactional with the insert;
// a failed increment is reported in the step results and left as-is.
func (uc *PlaceOrder) Execute(
	ctx context.Context,
	in PlaceOrderInput,
) (*models.Order, []StepResult, error) {

	if len(in.Items) == 0 {
		return nil, nil, httperr.ErrBusiness("order_items_required")
	}
	if in.Total <= 0 {
		return nil, nil, httperr.ErrBusiness("invalid_total")
	}

	var (
		lines []models.OrderItem
		total float64
	)

	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, nil, httperr.ErrBusiness("invalid_quantity")
		}

		item, err := uc.repo.GetMenuItem(ctx, line.ItemID)
		if err != nil {
			return nil, nil, httperr.ErrBusiness("menu_item_not_found")
		}

		itemID := item.ID
		total += item.Price * float64(line.Quantity)
		lines = append(lines, models.OrderItem{
			MenuItemID: &itemID,
			Quantity:   line.Quantity,
			Name:       item.Name,
			UnitPrice:  item.Price,
		})
	}

	// The recorded total is always the catalog sum at placement time; the
	// client-submitted total only confirms what the cart displayed.
	if math.Abs(total-in.Total) > 0.001 {
		return nil, nil, httperr.ErrBusiness("total_mismatch")
	}
	if total <= 0 {
		return nil, nil, httperr.ErrBusiness("invalid_total")
	}

	o := &models.Order{
		UserID:      in.UserID,
		CafeteriaID: in.CafeteriaID,
		Items:       lines,
		PickupTime:  in.PickupTime,
		Token:       domain.GenerateToken(),
		Status:      string(domain.InitialStatus()),
		Total:       total,
	}

	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, nil, err
	}

	var steps []StepResult
	for _, line := range o.Items {
		steps = append(steps, StepResult{
			Step: fmt.Sprintf("increment_sold_count:%d", *line.MenuItemID),
			Err:  uc.repo.IncrementSoldCount(ctx, *line.MenuItemID, line.Quantity),
		})
	}

	uc.audit.Dispatch(audit.Event{
		CafeteriaID: in.CafeteriaID,
		UserID:      &in.UserID,
		Action:      "order_placed",
		Entity:      "order",
		EntityID:    &o.ID,
	})

	return o, steps, nil
}
