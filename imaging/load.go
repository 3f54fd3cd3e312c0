// SPDX-License-Identifier: EPL-2.0

package imaging

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Extensions lists the file suffixes Load understands.
var Extensions = []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp"}

// Load decodes any registered image format and converts it to luma. The
// format name reported by image.Decode is returned alongside the grid.
func Load(r io.Reader) (*Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedImage
		}
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}

	grid, err := FromImage(img)
	if err != nil {
		return nil, format, err
	}

	return grid, format, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Grid, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	grid, format, err := Load(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return grid, format, nil
}

// IsImage reports whether name carries one of Extensions.
func IsImage(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// List returns the image files directly inside dir, sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && IsImage(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	return names, nil
}
