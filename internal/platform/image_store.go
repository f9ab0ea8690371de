package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Image file defaults
const (
	DefaultImageDirName  = "map-viewer"
	DefaultImageFileName = "map.png"
)

// ImageStore keeps the last fetched map image in one fixed-name file.
// Every Write replaces the previous image.
type ImageStore struct {
	dir  string
	name string
}

// NewImageStore creates a store writing name inside dir. An empty dir means
// a map-viewer folder under the OS temp directory; an empty name means map.png.
func NewImageStore(dir, name string) *ImageStore {
	if dir == "" {
		dir = DefaultImageDir()
	}
	if name == "" {
		name = DefaultImageFileName
	}
	return &ImageStore{dir: dir, name: filepath.Base(name)}
}

// DefaultImageDir returns the directory used when none is configured
func DefaultImageDir() string {
	return filepath.Join(os.TempDir(), DefaultImageDirName)
}

// Path returns the full path of the image file
func (s *ImageStore) Path() string {
	return filepath.Join(s.dir, s.name)
}

// Write replaces the image file with data. The bytes go to a sibling temp
// file first and are renamed over the old image, so a reader never sees a
// partially written file.
func (s *ImageStore) Write(data []byte) (string, error) {
	if err := CreateDirectoryIfNotExists(s.dir); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, s.name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close image: %w", err)
	}
	if err := os.Chmod(tmpName, DefaultFilePermissions); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("chmod image: %w", err)
	}

	path := s.Path()
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("replace image: %w", err)
	}
	return path, nil
}

// Read returns the current image bytes
func (s *ImageStore) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

// Remove deletes the image file; a missing file is not an error
func (s *ImageStore) Remove() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
