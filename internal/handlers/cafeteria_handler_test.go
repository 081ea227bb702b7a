package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

func cafeteriaRoutes(db *gorm.DB, adminID uint) *gin.Engine {
	h := NewCafeteriaHandler(db)

	r := newTestRouter()
	admin := r.Group("/", asUser(adminID, models.RoleAdmin))
	admin.POST("/cafeteria", h.Create)
	admin.PUT("/cafeteria/:id", h.Update)
	admin.DELETE("/cafeteria/:id", h.Delete)
	admin.GET("/my-cafeteria", h.MyCafeteria)
	return r
}

func TestCafeteriaCreate(t *testing.T) {
	db := newTestDB(t)
	admin := seedAccount(t, db, "admin@test.local", "secret1", models.RoleAdmin)
	r := cafeteriaRoutes(db, admin.ID)

	w := doJSON(t, r, http.MethodPost, "/cafeteria", gin.H{
		"name":       "Campus Corner",
		"open_hours": "08:00-18:00",
		"logo":       "logo.png",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var caf models.Cafeteria
	assert.NoError(t, db.Where("owner_id = ?", admin.ID).First(&caf).Error)
	assert.Equal(t, "Campus Corner", caf.Name)
}

func TestCafeteriaCreate_SecondOneConflicts(t *testing.T) {
	db := newTestDB(t)
	admin := seedAccount(t, db, "admin@test.local", "secret1", models.RoleAdmin)
	r := cafeteriaRoutes(db, admin.ID)

	payload := gin.H{"name": "First", "open_hours": "08:00-18:00", "logo": "l.png"}
	assert.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/cafeteria", payload).Code)

	w := doJSON(t, r, http.MethodPost, "/cafeteria", gin.H{
		"name": "Second", "open_hours": "09:00-17:00", "logo": "l2.png",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "cafeteria_already_exists", decodeBody(t, w)["error"])
}

func TestCafeteriaUpdate_ForeignLooksAbsent(t *testing.T) {
	db := newTestDB(t)
	adminA := seedAccount(t, db, "a@test.local", "secret1", models.RoleAdmin)
	adminB := seedAccount(t, db, "b@test.local", "secret1", models.RoleAdmin)

	caf := models.Cafeteria{Name: "Original", OwnerID: adminA.ID}
	assert.NoError(t, db.Create(&caf).Error)

	r := cafeteriaRoutes(db, adminB.ID)
	w := doJSON(t, r, http.MethodPut, "/cafeteria/1", gin.H{"name": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Cafeteria
	assert.NoError(t, db.First(&stored, caf.ID).Error)
	assert.Equal(t, "Original", stored.Name)
}

func TestCafeteriaUpdate_PartialFields(t *testing.T) {
	db := newTestDB(t)
	admin := seedAccount(t, db, "admin@test.local", "secret1", models.RoleAdmin)

	caf := models.Cafeteria{Name: "Original", OpenHours: "08:00-18:00", OwnerID: admin.ID}
	assert.NoError(t, db.Create(&caf).Error)

	r := cafeteriaRoutes(db, admin.ID)
	w := doJSON(t, r, http.MethodPut, "/cafeteria/1", gin.H{"name": "Renamed"})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Cafeteria
	assert.NoError(t, db.First(&stored, caf.ID).Error)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "08:00-18:00", stored.OpenHours)
}

func TestCafeteriaDelete_ForeignLooksAbsent(t *testing.T) {
	db := newTestDB(t)
	adminA := seedAccount(t, db, "a@test.local", "secret1", models.RoleAdmin)
	adminB := seedAccount(t, db, "b@test.local", "secret1", models.RoleAdmin)

	caf := models.Cafeteria{Name: "Keep", OwnerID: adminA.ID}
	assert.NoError(t, db.Create(&caf).Error)

	r := cafeteriaRoutes(db, adminB.ID)
	w := doJSON(t, r, http.MethodDelete, "/cafeteria/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.Cafeteria{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCafeteriaDelete_WithExistingOrders(t *testing.T) {
	db := newTestDB(t)
	admin := seedAccount(t, db, "admin@test.local", "secret1", models.RoleAdmin)
	buyer := seedAccount(t, db, "buyer@test.local", "secret1", models.RoleUser)

	caf := models.Cafeteria{Name: "Closing", OwnerID: admin.ID}
	assert.NoError(t, db.Create(&caf).Error)

	item := models.MenuItem{CafeteriaID: caf.ID, Name: "Coffee", Price: 50}
	assert.NoError(t, db.Create(&item).Error)

	order := models.Order{
		UserID:      buyer.ID,
		CafeteriaID: caf.ID,
		Token:       "ABCD1234",
		Status:      "pending",
		Total:       50,
		Items: []models.OrderItem{
			{MenuItemID: &item.ID, Quantity: 1, Name: "Coffee", UnitPrice: 50},
		},
	}
	assert.NoError(t, db.Create(&order).Error)

	r := cafeteriaRoutes(db, admin.ID)
	w := doJSON(t, r, http.MethodDelete, "/cafeteria/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Orders, lines and menu go with the cafeteria.
	var count int64
	db.Model(&models.Cafeteria{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.OrderItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.MenuItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestMyCafeteria_NoneYet(t *testing.T) {
	db := newTestDB(t)
	admin := seedAccount(t, db, "admin@test.local", "secret1", models.RoleAdmin)
	r := cafeteriaRoutes(db, admin.ID)

	w := doJSON(t, r, http.MethodGet, "/my-cafeteria", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody(t, w)["cafeteria"])
}
