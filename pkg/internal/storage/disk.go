package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DiskDriver stores objects as flat files below a root directory. Keys are
// uuid-based, but slashes are tolerated and mapped to subdirectories.
type DiskDriver struct {
	Root string
}

func NewDiskDriver(root string) (*DiskDriver, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DiskDriver{Root: root}, nil
}

func (d *DiskDriver) path(key string) string {
	key = strings.TrimLeft(filepath.Clean("/"+key), "/")
	return filepath.Join(d.Root, key)
}

func (d *DiskDriver) Put(key string, data []byte, _ string) error {
	path := d.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (d *DiskDriver) Get(key string) ([]byte, error) {
	return os.ReadFile(d.path(key))
}

func (d *DiskDriver) Delete(key string) error {
	err := os.Remove(d.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (d *DiskDriver) Exists(key string) bool {
	_, err := os.Stat(d.path(key))
	return err == nil
}
