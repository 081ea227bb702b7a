package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/imaging"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/middleware"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/storage"
)

type ProfileHandler struct {
	db   *gorm.DB
	disk storage.Disk
}

func NewProfileHandler(db *gorm.DB, disk storage.Disk) *ProfileHandler {
	return &ProfileHandler{db: db, disk: disk}
}

// Update handles the multipart profile form: optional display name and
// optional avatar image.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	updated := false

	if name := c.PostForm("name"); name != "" {
		user.Name = name
		updated = true
	}

	if file, err := c.FormFile("avatar"); err == nil {
		src, err := file.Open()
		if err != nil {
			httperr.Internal(c, "failed_to_read_avatar", "Failed to read the uploaded avatar.")
			return
		}
		raw, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			httperr.Internal(c, "failed_to_read_avatar", "Failed to read the uploaded avatar.")
			return
		}

		normalized, err := imaging.Normalize(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "The uploaded file is not a supported image.")
			return
		}

		path := fmt.Sprintf("avatars/admin_%d_%d.webp", userID, time.Now().Unix())
		if err := h.disk.Put(path, normalized); err != nil {
			httperr.Internal(c, "failed_to_store_avatar", "Failed to store the avatar.")
			return
		}

		user.Avatar = h.disk.URL(path)
		updated = true
	}

	if !updated {
		httperr.BadRequest(c, "no_update_data", "No data provided for update.")
		return
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to update profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user": gin.H{
			"name":   user.Name,
			"avatar": user.Avatar,
			"email":  user.Email,
			"role":   user.Role,
		},
	})
}
