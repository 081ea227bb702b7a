package order

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/audit"
	infraRepo "github.com/SmartCafeteriaHQ/cafeteria-api/internal/infra/repository"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

// ======================================================
// TEST FIXTURES
// ======================================================

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// FK enforcement on so constraint behavior matches postgres.
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// A second connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Cafeteria{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func newTestRepo(t *testing.T) (*infraRepo.OrderGormRepository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return infraRepo.NewOrderGormRepository(db), db
}

func newTestDispatcher(db *gorm.DB) *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(db))
}

type recordingMailer struct {
	fail bool
	to   []string
	subj []string
	body []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.to = append(m.to, to)
	m.subj = append(m.subj, subject)
	m.body = append(m.body, body)
	return nil
}

// --------- Seeds ---------

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	u := &models.User{
		Name:         "Test " + role,
		Email:        fmt.Sprintf("%s%d@test.local", role, seq(db)),
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func seedCafeteria(t *testing.T, db *gorm.DB, ownerID uint) *models.Cafeteria {
	t.Helper()

	c := &models.Cafeteria{
		Name:    "Test Cafeteria",
		OwnerID: ownerID,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to seed cafeteria: %v", err)
	}
	return c
}

func seedMenuItem(t *testing.T, db *gorm.DB, cafeteriaID uint, name string, price float64) *models.MenuItem {
	t.Helper()

	m := &models.MenuItem{
		CafeteriaID: cafeteriaID,
		Name:        name,
		Price:       price,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return m
}

var seqCounter int

func seq(_ *gorm.DB) int {
	seqCounter++
	return seqCounter
}
