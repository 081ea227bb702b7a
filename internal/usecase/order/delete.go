package order

import (
	"context"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/audit"
	domain "github.com/SmartCafeteriaHQ/cafeteria-api/internal/domain/order"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

type DeleteOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteOrder {
	return &DeleteOrder{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes an order. A user may delete only their own order; an admin
// only an order of their own cafeteria. Absent and foreign orders fail the
// same way.
func (uc *DeleteOrder) Execute(
	ctx context.Context,
	actorID uint,
	actorRole string,
	orderID uint,
) error {

	var (
		o   *models.Order
		err error
	)

	if actorRole == models.RoleAdmin {
		caf, cerr := uc.repo.GetCafeteriaByOwner(ctx, actorID)
		if cerr != nil {
			return httperr.ErrBusiness("cafeteria_not_found")
		}
		o, err = uc.repo.GetOrderForCafeteria(ctx, orderID, caf.ID)
	} else {
		o, err = uc.repo.GetOrderForUser(ctx, orderID, actorID)
	}

	if err != nil {
		return httperr.ErrBusiness("order_not_found")
	}

	if err := uc.repo.DeleteOrder(ctx, o); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CafeteriaID: o.CafeteriaID,
		UserID:      &actorID,
		Action:      "order_deleted",
		Entity:      "order",
		EntityID:    &o.ID,
	})

	return nil
}
