// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedFormat   = errors.New("unsupported WAV sample format")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrMissingData         = errors.New("WAV data chunk not found")
	ErrUnknownEncoding     = errors.New("unknown WAV export encoding")
	ErrNotSeekable         = errors.New("encoding needs a seekable writer")
)
