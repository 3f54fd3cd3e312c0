// SPDX-License-Identifier: EPL-2.0

// Package imaging loads raster images as 8-bit luma grids.
//
// PNG, JPEG and GIF come from the standard library decoders; BMP, TIFF and
// WebP are registered from golang.org/x/image. Whatever the source colour
// model, pixels are converted with color.GrayModel so every Grid holds
// intensities in [0, 255].
//
//	grid, format, err := imaging.LoadFile("Greyscale Images/gradient.png")
//	samples := signal.Scan(grid, signal.Bidirectional)
//
// A Grid never changes after construction. Preview renders a rough text
// thumbnail for terminals without image support.
package imaging
