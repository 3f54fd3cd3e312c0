// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"strings"
)

// Grid is a read-only matrix of scalar intensities.
type Grid interface {
	Width() int
	Height() int
	// At returns the intensity at column x, row y (both 0-based).
	At(x, y int) float64
}

// ScanDirection selects how rows are traversed by Scan.
type ScanDirection int

const (
	// Unidirectional walks every row left to right (row-major order).
	Unidirectional ScanDirection = iota
	// Bidirectional alternates left to right on even rows and right to left
	// on odd rows, so neighbouring pixels stay neighbouring samples.
	Bidirectional
)

func (d ScanDirection) String() string {
	switch d {
	case Unidirectional:
		return "unidirectional"
	case Bidirectional:
		return "bidirectional"
	default:
		return fmt.Sprintf("ScanDirection(%d)", int(d))
	}
}

// ParseScanDirection accepts "unidirectional" / "row-major" and
// "bidirectional" / "snake" / "boustrophedon" (case-insensitive).
func ParseScanDirection(s string) (ScanDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unidirectional", "uni", "row-major", "rowmajor":
		return Unidirectional, nil
	case "bidirectional", "bi", "snake", "boustrophedon":
		return Bidirectional, nil
	}

	return Unidirectional, fmt.Errorf("%q: %w", s, ErrUnknownDirection)
}

// Scan linearizes grid into a sequence of Width*Height samples, top row first.
func Scan(grid Grid, dir ScanDirection) []float64 {
	width, height := grid.Width(), grid.Height()
	if width <= 0 || height <= 0 {
		return []float64{}
	}

	out := make([]float64, width*height)
	i := 0

	for y := range height {
		if dir != Bidirectional || y%2 == 0 {
			for x := range width {
				out[i] = grid.At(x, y)
				i++
			}
			continue
		}

		for x := width - 1; x >= 0; x-- {
			out[i] = grid.At(x, y)
			i++
		}
	}

	return out
}
