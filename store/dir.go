package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirStore keeps each record as a <key>.json file inside one directory.
// The directory is created lazily on first write.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (d *DirStore) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}

func (d *DirStore) Get(key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(d.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read record %q: %w", key, err)
	}
	return raw, true, nil
}

func (d *DirStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("cannot create store directory %q: %w", d.dir, err)
	}
	if err := os.WriteFile(d.path(key), value, 0644); err != nil {
		return fmt.Errorf("cannot write record %q: %w", key, err)
	}
	return nil
}

func (d *DirStore) Delete(key string) error {
	err := os.Remove(d.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *DirStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), ".json"))
	}
	return keys, nil
}
