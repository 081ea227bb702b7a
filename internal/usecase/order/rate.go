package order

import (
	"context"

	domain "github.com/SmartCafeteriaHQ/cafeteria-api/internal/domain/order"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
)

type RateItem struct {
	repo domain.Repository
}

func NewRateItem(repo domain.Repository) *RateItem {
	return &RateItem{repo: repo}
}

// Execute adds one rating to the item's accumulator. There is no per-user
// rating record: every call counts, so re-rating shifts the average again.
func (uc *RateItem) Execute(
	ctx context.Context,
	itemID uint,
	rating int,
) error {

	if rating < 1 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}

	if _, err := uc.repo.GetMenuItem(ctx, itemID); err != nil {
		return httperr.ErrBusiness("menu_item_not_found")
	}

	return uc.repo.AddRating(ctx, itemID, rating)
}
