// SPDX-License-Identifier: EPL-2.0

package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Grid is an immutable 8-bit luma raster. It satisfies signal.Grid.
type Grid struct {
	width  int
	height int
	pix    []uint8
}

// NewGrid copies pix, which holds width*height intensities in row-major
// order.
func NewGrid(width, height int, pix []uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrEmptyImage)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("got %d for %dx%d: %w", len(pix), width, height, ErrPixelCount)
	}

	return &Grid{
		width:  width,
		height: height,
		pix:    append([]uint8(nil), pix...),
	}, nil
}

// FromImage converts img to luma with color.GrayModel. Colour images lose
// their chroma here; the rest of the pipeline is single-channel.
func FromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	pix := make([]uint8, w*h)

	if gray, ok := img.(*image.Gray); ok {
		for y := range h {
			off := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w:(y+1)*w], gray.Pix[off:off+w])
		}
	} else {
		for y := range h {
			for x := range w {
				c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				pix[y*w+x] = c.Y
			}
		}
	}

	return &Grid{width: w, height: h, pix: pix}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Len is the pixel count, Width*Height.
func (g *Grid) Len() int { return len(g.pix) }

// At returns the intensity at (x, y) in [0, 255].
func (g *Grid) At(x, y int) float64 {
	return float64(g.pix[y*g.width+x])
}

// Gray returns a copy of the raster as an *image.Gray.
func (g *Grid) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	copy(img.Pix, g.pix)
	return img
}

const previewRamp = " .:-=+*#%@"

// Preview draws the grid as text, cols characters wide. Terminal cells are
// about twice as tall as wide, so every output row covers two pixel rows
// per column step.
func (g *Grid) Preview(cols int) string {
	if cols <= 0 || cols > g.width {
		cols = g.width
	}
	rows := max(1, g.height*cols/g.width/2)

	var sb strings.Builder
	sb.Grow((cols + 1) * rows)

	last := len(previewRamp) - 1
	for r := range rows {
		y := r * g.height / rows
		for c := range cols {
			x := c * g.width / cols
			v := int(g.pix[y*g.width+x])
			sb.WriteByte(previewRamp[v*last/255])
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
