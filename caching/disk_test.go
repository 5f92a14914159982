package caching

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestInitDiskCache(t *testing.T) {
	tests := []struct {
		name string
		want *LocalDiskCache
	}{
		{
			name: "successful init",
			want: &LocalDiskCache{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InitDiskCache(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InitDiskCache() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalDiskCache_Read(t *testing.T) {
	tempDir := t.TempDir()
	cache := LocalDiskCache{}

	t.Run("Read existing catalogue successfully", func(t *testing.T) {
		content := []byte(`{"tokens":[]}`)
		path := filepath.Join(tempDir, "catalogue.json")

		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatalf("Failed to write content to file: %v", err)
		}

		file, err := cache.Read(path)
		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}

		if string(file) != string(content) {
			t.Errorf("Expected file content to match, got: %s", string(file))
		}
	})

	t.Run("Read non-existing file", func(t *testing.T) {
		_, err := cache.Read(filepath.Join(tempDir, "non_existing_file"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected os.ErrNotExist error, got: %v", err)
		}
	})

	t.Run("Read empty file successfully", func(t *testing.T) {
		path := filepath.Join(tempDir, "empty.json")

		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("Failed to create empty file: %v", err)
		}

		file, err := cache.Read(path)
		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}

		if len(file) != 0 {
			t.Errorf("Expected empty file content, got: %s", string(file))
		}
	})
}

func TestLocalDiskCache_Write(t *testing.T) {
	cache := LocalDiskCache{}

	t.Run("Write file in non-existing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshots", "0xabc.json")
		data := []byte("test data")

		err := cache.Write(path, data)
		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}

		written, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Expected file to exist, got: %v", err)
		}

		if string(written) != string(data) {
			t.Errorf("Expected file content to match, got: %s", string(written))
		}
	})

	t.Run("Overwrite existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshot.json")

		if err := cache.Write(path, []byte("old")); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		if err := cache.Write(path, []byte("new")); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		written, _ := os.ReadFile(path)
		if string(written) != "new" {
			t.Errorf("Expected overwritten content, got: %s", string(written))
		}

		entries, _ := os.ReadDir(filepath.Dir(path))
		if len(entries) != 1 {
			t.Errorf("Expected no temporary files left behind, got %d entries", len(entries))
		}
	})

	t.Run("Write file below a regular file", func(t *testing.T) {
		parent := filepath.Join(t.TempDir(), "not-a-dir")

		if err := os.WriteFile(parent, []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}

		err := cache.Write(filepath.Join(parent, "snapshot.json"), []byte("test data"))
		if err == nil {
			t.Error("Expected a write error, but no error occurred")
		}
	})
}
