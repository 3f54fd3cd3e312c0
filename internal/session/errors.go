// SPDX-License-Identifier: EPL-2.0

package session

import "errors"

var (
	// ErrNoImage is returned when an operation needs an image before one
	// was loaded.
	ErrNoImage = errors.New("no image loaded")

	// ErrUnknownStage indicates a Stage value outside Image, Oscillator
	// and Blend.
	ErrUnknownStage = errors.New("unknown stage")
)
