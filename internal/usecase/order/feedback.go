package order

import (
	"context"

	domain "github.com/SmartCafeteriaHQ/cafeteria-api/internal/domain/order"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
)

type SubmitFeedback struct {
	repo domain.Repository
}

func NewSubmitFeedback(repo domain.Repository) *SubmitFeedback {
	return &SubmitFeedback{repo: repo}
}

// Execute records post-fulfillment feedback on the user's own order.
func (uc *SubmitFeedback) Execute(
	ctx context.Context,
	userID uint,
	orderID uint,
	rating int,
	comment string,
) error {

	if rating < 1 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}

	o, err := uc.repo.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		return httperr.ErrBusiness("order_not_found")
	}

	return uc.repo.UpdateOrderFeedback(ctx, o.ID, rating, comment)
}
