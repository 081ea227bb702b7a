package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/middleware"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

type CafeteriaHandler struct {
	db *gorm.DB
}

func NewCafeteriaHandler(db *gorm.DB) *CafeteriaHandler {
	return &CafeteriaHandler{db: db}
}

// --------- Requests ---------

type CreateCafeteriaRequest struct {
	Name      string `json:"name" binding:"required"`
	OpenHours string `json:"open_hours" binding:"required"`
	Logo      string `json:"logo" binding:"required"`
}

type UpdateCafeteriaRequest struct {
	Name      *string `json:"name,omitempty"`
	OpenHours *string `json:"open_hours,omitempty"`
	Logo      *string `json:"logo,omitempty"`
}

// --------- Handlers ---------

func (h *CafeteriaHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCafeteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var count int64
	h.db.Model(&models.Cafeteria{}).Where("owner_id = ?", ownerID).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "cafeteria_already_exists", "This admin already owns a cafeteria.")
		return
	}

	caf := models.Cafeteria{
		Name:      req.Name,
		OpenHours: req.OpenHours,
		Logo:      req.Logo,
		OwnerID:   ownerID,
	}

	if err := h.db.Create(&caf).Error; err != nil {
		// Concurrent create for the same owner lands on the unique index.
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "cafeteria_already_exists", "This admin already owns a cafeteria.")
			return
		}
		httperr.Internal(c, "failed_to_create_cafeteria", "Failed to create cafeteria.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Cafeteria created", "cafeteria": caf})
}

func (h *CafeteriaHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	// Load then authorize; a foreign cafeteria is reported exactly like an
	// absent one.
	var caf models.Cafeteria
	if err := h.db.First(&caf, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "cafeteria_not_found", "Cafeteria not found.")
		return
	}
	if caf.OwnerID != ownerID {
		httperr.NotFound(c, "cafeteria_not_found", "Cafeteria not found.")
		return
	}

	var req UpdateCafeteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		caf.Name = *req.Name
	}
	if req.OpenHours != nil {
		caf.OpenHours = *req.OpenHours
	}
	if req.Logo != nil {
		caf.Logo = *req.Logo
	}

	if err := h.db.Save(&caf).Error; err != nil {
		httperr.Internal(c, "failed_to_update_cafeteria", "Failed to update cafeteria.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cafeteria updated", "cafeteria": caf})
}

func (h *CafeteriaHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var caf models.Cafeteria
	if err := h.db.First(&caf, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "cafeteria_not_found", "Cafeteria not found.")
		return
	}
	if caf.OwnerID != ownerID {
		httperr.NotFound(c, "cafeteria_not_found", "Cafeteria not found.")
		return
	}

	if err := h.db.Delete(&caf).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_cafeteria", "Failed to delete cafeteria.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cafeteria deleted"})
}

func (h *CafeteriaHandler) MyCafeteria(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var caf models.Cafeteria
	if err := h.db.Where("owner_id = ?", ownerID).First(&caf).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"cafeteria": nil})
			return
		}
		httperr.Internal(c, "failed_to_get_cafeteria", "Failed to load cafeteria.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafeteria": caf})
}
