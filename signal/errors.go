// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	// ErrDegenerateSignal indicates a sequence with zero dynamic range (max == min).
	ErrDegenerateSignal = errors.New("signal has zero dynamic range")

	// ErrInsufficientLength indicates a fade longer than half the sequence.
	ErrInsufficientLength = errors.New("fade length exceeds half the sequence length")

	// ErrInvalidSpec indicates an oscillator spec outside the supported bounds.
	ErrInvalidSpec = errors.New("invalid oscillator spec")

	// ErrUnknownDirection indicates an unparsable scan direction.
	ErrUnknownDirection = errors.New("unknown scan direction")

	// ErrUnknownWaveform indicates an unparsable waveform name.
	ErrUnknownWaveform = errors.New("unknown waveform")
)
