package caching

import (
	"errors"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/swagftw/gi"
)

type LocalDiskCache struct{}

var _ DiskCache = (*LocalDiskCache)(nil)

func InitDiskCache() *LocalDiskCache {
	l := new(LocalDiskCache)
	err := gi.Inject(l)
	if err != nil {
		log.Fatal("Failed to inject disk cache", err)
	}

	return l
}

func (l LocalDiskCache) Read(path string) ([]byte, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Errorf("file %s does not exist on disk", path)

		return nil, err
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("error reading file %s from disk: %v", path, err)

		return nil, err
	}

	return file, nil
}

// Write stores data at path, creating missing parent directories.
// The file is replaced atomically so readers never observe a partial snapshot.
func (l LocalDiskCache) Write(path string, data []byte) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, 0o700)
	if err != nil {
		log.Errorf("error creating directory %s: %v", dir, err)

		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		log.Errorf("error writing file %s to disk: %v", path, err)

		return err
	}

	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		log.Errorf("error writing file %s to disk: %v", path, err)

		return err
	}

	if err = tmp.Close(); err != nil {
		log.Errorf("error writing file %s to disk: %v", path, err)

		return err
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		log.Errorf("error writing file %s to disk: %v", path, err)

		return err
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		log.Errorf("error writing file %s to disk: %v", path, err)

		return err
	}

	log.Debugf("successfully wrote payload of size %d to file %s", len(data), path)

	return nil
}
