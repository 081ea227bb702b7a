package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httpresp"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

// BrowseHandler serves the customer-facing catalog views.
type BrowseHandler struct {
	db *gorm.DB
}

func NewBrowseHandler(db *gorm.DB) *BrowseHandler {
	return &BrowseHandler{db: db}
}

func (h *BrowseHandler) Cafeterias(c *gin.Context) {
	var cafeterias []models.Cafeteria
	if err := h.db.Order("id ASC").Find(&cafeterias).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cafeterias", "Failed to load cafeterias.")
		return
	}

	httpresp.List(c, cafeterias)
}

// Menu returns a cafeteria's items; average_rating rides along via the
// MenuItem serializer.
func (h *BrowseHandler) Menu(c *gin.Context) {
	var items []models.MenuItem
	if err := h.db.
		Where("cafeteria_id = ?", c.Param("cafeteriaId")).
		Order("id ASC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_load_menu", "Failed to load menu.")
		return
	}

	httpresp.List(c, items)
}
