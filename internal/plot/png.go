// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ik5/sonipix/signal"
)

// ErrTooSmall is returned when the requested image cannot hold the plot
// area below its title.
var ErrTooSmall = errors.New("plot: image too small")

const (
	titleHeight = 18
	margin      = 4
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	foreground = color.RGBA{0x1f, 0x4e, 0x9a, 0xff}
	axis       = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
	ink        = color.Black
)

// frame prepares a white image with a title and returns the rectangle
// left for the plot.
func frame(title string, width, height int) (*image.RGBA, image.Rectangle, error) {
	area := image.Rect(margin, titleHeight+margin, width-margin, height-margin)
	if area.Dx() < 2 || area.Dy() < 2 {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %dx%d", ErrTooSmall, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(margin, basicfont.Face7x13.Ascent+margin),
	}
	d.DrawString(title)

	return img, area, nil
}

func vline(img *image.RGBA, x, y0, y1 int, c color.Color) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

func hline(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x < x1; x++ {
		img.Set(x, y, c)
	}
}

// WaveformPNG renders data as a min/max envelope and writes it to w as a
// PNG image of width×height pixels.
func WaveformPNG(w io.Writer, data []float64, title string, width, height int) error {
	img, area, err := frame(title, width, height)
	if err != nil {
		return err
	}

	mid := area.Min.Y + (area.Dy()-1)/2
	hline(img, area.Min.X, area.Max.X, mid, axis)

	if len(data) > 0 {
		lo, hi := envelope(data, area.Dx())
		for i := range area.Dx() {
			vline(img, area.Min.X+i,
				area.Min.Y+scaleY(hi[i], area.Dy()),
				area.Min.Y+scaleY(lo[i], area.Dy()),
				foreground)
		}
	}

	return png.Encode(w, img)
}

// SpectrumPNG renders s on a logarithmic frequency axis and writes it to w
// as a PNG image of width×height pixels.
func SpectrumPNG(w io.Writer, s signal.Spectrum, title string, width, height int) error {
	img, area, err := frame(title, width, height)
	if err != nil {
		return err
	}

	bottom := area.Max.Y - 1
	hline(img, area.Min.X, area.Max.X, bottom, axis)

	fmax := math.Min(MaxFrequency, float64(s.SampleRate())/2)
	if fmax > MinFrequency {
		for i, m := range bands(s, area.Dx(), MinFrequency, fmax) {
			if m <= 0 {
				continue
			}
			top := bottom - int(math.Round(m*float64(area.Dy()-1)))
			vline(img, area.Min.X+i, top, bottom, foreground)
		}
	}

	return png.Encode(w, img)
}
