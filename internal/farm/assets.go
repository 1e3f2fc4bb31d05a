package farm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrOutsideRoot   = errors.New("asset path escapes its root")
)

// AssetDir reads files from one directory tree. Names are slash separated
// and relative to the directory; anything resolving outside of it,
// including through symlinks, is refused.
type AssetDir struct {
	path string
}

func NewAssetDir(path string) *AssetDir {
	return &AssetDir{path: path}
}

func (d *AssetDir) Path() string { return d.path }

func (d *AssetDir) ReadFile(name string) ([]byte, error) {
	name = filepath.FromSlash(name)
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q", ErrOutsideRoot, name)
	}

	root, err := os.OpenRoot(d.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetNotFound, err)
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetNotFound, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetNotFound, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrAssetNotFound, name)
	}

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetNotFound, err)
	}
	return b, nil
}

// Check reports whether the directory exists and can be opened.
func (d *AssetDir) Check() error {
	root, err := os.OpenRoot(d.path)
	if err != nil {
		return err
	}
	return root.Close()
}
