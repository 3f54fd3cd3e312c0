// SPDX-License-Identifier: EPL-2.0

package imaging

import "errors"

var (
	ErrEmptyImage       = errors.New("image has no pixels")
	ErrUnsupportedImage = errors.New("unsupported image format")
	ErrPixelCount       = errors.New("pixel count does not match dimensions")
)
