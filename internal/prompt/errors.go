// SPDX-License-Identifier: EPL-2.0

package prompt

import "errors"

var (
	ErrTooManyAttempts = errors.New("too many invalid answers")
	ErrEmptyInput      = errors.New("no input given")
	ErrInvalidChoice   = errors.New("not one of the listed options")
	ErrNotANumber      = errors.New("not a number")
	ErrBadFileName     = errors.New("unusable file name")
)
