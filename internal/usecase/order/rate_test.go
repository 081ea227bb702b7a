package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

func TestRateItem_AverageIsArithmeticMean(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := NewRateItem(repo)

	admin := seedUser(t, db, models.RoleAdmin)
	caf := seedCafeteria(t, db, admin.ID)
	coffee := seedMenuItem(t, db, caf.ID, "Coffee", 50)

	ctx := context.Background()
	for _, r := range []int{5, 4, 3} {
		assert.NoError(t, uc.Execute(ctx, coffee.ID, r))
	}

	var item models.MenuItem
	assert.NoError(t, db.First(&item, coffee.ID).Error)
	assert.Equal(t, 3, item.RatingCount)
	assert.Equal(t, 12.0, item.RatingTotal)
	assert.InDelta(t, 4.0, item.AverageRating(), 0.0001)
}

func TestRateItem_OutOfRange(t *testing.T) {
	repo, _ := newTestRepo(t)
	uc := NewRateItem(repo)

	ctx := context.Background()
	for _, r := range []int{0, 6, -1} {
		err := uc.Execute(ctx, 1, r)
		assert.True(t, httperr.IsBusiness(err, "invalid_rating"), "rating %d", r)
	}
}

func TestRateItem_UnknownItem(t *testing.T) {
	repo, _ := newTestRepo(t)
	uc := NewRateItem(repo)

	err := uc.Execute(context.Background(), 999, 5)
	assert.True(t, httperr.IsBusiness(err, "menu_item_not_found"))
}
