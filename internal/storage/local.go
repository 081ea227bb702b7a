package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/config"
)

type localDisk struct {
	root    string
	baseURL string
}

func newLocalDisk(cfg *config.Config) *localDisk {
	root := cfg.UploadDir
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &localDisk{
		root:    root,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/") + "/uploads",
	}
}

func (d *localDisk) abs(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

func (d *localDisk) Put(path string, content []byte) error {
	full := d.abs(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, content, 0o644)
}

func (d *localDisk) Delete(path string) error {
	err := os.Remove(d.abs(path))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *localDisk) URL(path string) string {
	return d.baseURL + "/" + strings.TrimLeft(path, "/")
}
