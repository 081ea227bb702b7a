package storage

import (
	"fmt"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/config"
)

// Disk stores uploaded files (avatars, logos, menu images). Paths use
// forward slashes relative to the disk root; URL returns the public
// address the stored file is served from.
type Disk interface {
	Put(path string, content []byte) error
	Delete(path string) error
	URL(path string) string
}

// New selects the configured driver. Local disk is the default; s3 requires
// a bucket.
func New(cfg *config.Config) (Disk, error) {
	switch cfg.StorageDriver {
	case "", "local":
		return newLocalDisk(cfg), nil
	case "s3":
		return newS3Disk(cfg)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}
}
