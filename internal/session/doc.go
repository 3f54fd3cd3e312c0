// SPDX-License-Identifier: EPL-2.0

// Package session holds the state of one sonification run: the current
// image, the oscillator (or sample kernel) settings and the three signals
// derived from them. Every setter recomputes what depends on it, so the
// signals are always consistent with the parameters.
package session
