package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/config"
)

func newTestDisk(t *testing.T) (Disk, string) {
	t.Helper()

	dir := t.TempDir()
	disk, err := New(&config.Config{
		StorageDriver: "local",
		UploadDir:     dir,
		PublicBaseURL: "http://localhost:8080/",
	})
	if err != nil {
		t.Fatalf("failed to build disk: %v", err)
	}
	return disk, dir
}

func TestLocalDisk_PutAndDelete(t *testing.T) {
	disk, dir := newTestDisk(t)

	assert.NoError(t, disk.Put("menu/a.webp", []byte("data")))

	raw, err := os.ReadFile(filepath.Join(dir, "menu", "a.webp"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("data"), raw)

	assert.NoError(t, disk.Delete("menu/a.webp"))
	_, err = os.ReadFile(filepath.Join(dir, "menu", "a.webp"))
	assert.True(t, os.IsNotExist(err))

	// Deleting an absent file is not an error.
	assert.NoError(t, disk.Delete("menu/a.webp"))
}

func TestLocalDisk_URL(t *testing.T) {
	disk, _ := newTestDisk(t)

	assert.Equal(t, "http://localhost:8080/uploads/menu/a.webp", disk.URL("menu/a.webp"))
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(&config.Config{StorageDriver: "ftp"})
	assert.Error(t, err)
}
