package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/imaging"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/middleware"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/storage"
)

type MenuHandler struct {
	db   *gorm.DB
	disk storage.Disk
}

func NewMenuHandler(db *gorm.DB, disk storage.Disk) *MenuHandler {
	return &MenuHandler{db: db, disk: disk}
}

// --------- Requests ---------

type CreateMenuItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
	Image string  `json:"image"`
	Tags  string  `json:"tags"`
}

type UpdateMenuItemRequest struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
	Image *string  `json:"image,omitempty"`
	Tags  *string  `json:"tags,omitempty"`
}

// --------- Helpers ---------

// Menu mutations are always scoped to the admin's own cafeteria.
func (h *MenuHandler) myCafeteria(c *gin.Context) (*models.Cafeteria, bool) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var caf models.Cafeteria
	if err := h.db.Where("owner_id = ?", ownerID).First(&caf).Error; err != nil {
		httperr.NotFound(c, "cafeteria_not_found", "Cafeteria not found.")
		return nil, false
	}
	return &caf, true
}

func (h *MenuHandler) myItem(c *gin.Context) (*models.MenuItem, bool) {
	caf, ok := h.myCafeteria(c)
	if !ok {
		return nil, false
	}

	var item models.MenuItem
	if err := h.db.
		Where("id = ? AND cafeteria_id = ?", c.Param("id"), caf.ID).
		First(&item).Error; err != nil {
		httperr.NotFound(c, "menu_item_not_found", "Menu item not found.")
		return nil, false
	}
	return &item, true
}

// --------- Handlers ---------

func (h *MenuHandler) Create(c *gin.Context) {
	caf, ok := h.myCafeteria(c)
	if !ok {
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Price must be non-negative.")
		return
	}

	item := models.MenuItem{
		CafeteriaID: caf.ID,
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Tags:        req.Tags,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_menu_item", "Failed to add menu item.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added", "item": item})
}

func (h *MenuHandler) List(c *gin.Context) {
	var items []models.MenuItem
	if err := h.db.
		Where("cafeteria_id = ?", c.Param("cafeteriaId")).
		Order("id ASC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_menu", "Failed to fetch menu items.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) Update(c *gin.Context) {
	item, ok := h.myItem(c)
	if !ok {
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be non-negative.")
			return
		}
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Tags != nil {
		item.Tags = *req.Tags
	}

	if err := h.db.Save(item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_menu_item", "Failed to update menu item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item updated", "item": item})
}

func (h *MenuHandler) Delete(c *gin.Context) {
	item, ok := h.myItem(c)
	if !ok {
		return
	}

	if err := h.db.Delete(item).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_menu_item", "Failed to delete menu item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

// UploadImage stores a normalized webp rendition of the uploaded file and
// points the item at its public URL.
func (h *MenuHandler) UploadImage(c *gin.Context) {
	item, ok := h.myItem(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "An image file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Failed to read the uploaded image.")
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Failed to read the uploaded image.")
		return
	}

	normalized, err := imaging.Normalize(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The uploaded file is not a supported image.")
		return
	}

	path := "menu/" + uuid.NewString() + ".webp"
	if err := h.disk.Put(path, normalized); err != nil {
		httperr.Internal(c, "failed_to_store_image", "Failed to store the image.")
		return
	}

	item.Image = h.disk.URL(path)
	if err := h.db.Model(item).Update("image", item.Image).Error; err != nil {
		httperr.Internal(c, "failed_to_update_menu_item", "Failed to update menu item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded", "item": item})
}
