// SPDX-License-Identifier: EPL-2.0

package session

import (
	"fmt"
	"path/filepath"
	"strings"
)

const rule = "-------------------------------------------------"

// Summary renders the current image and oscillator parameters as a block
// of text for the menu header.
func (s *Session) Summary() string {
	var sb strings.Builder

	sb.WriteString(rule + "\nCurrent IMG/OSC Parameters\n" + rule + "\n\n")

	if s.grid == nil {
		sb.WriteString("IMG   (none loaded)\n")
	} else {
		fmt.Fprintf(&sb, "IMG   Name      : %s\n", s.name)
		fmt.Fprintf(&sb, "      Format    : %s\n", strings.ToUpper(s.format))
		fmt.Fprintf(&sb, "      Dimensions: %dx%d\n", s.grid.Width(), s.grid.Height())
		fmt.Fprintf(&sb, "      Pixels    : %d\n", s.grid.Len())
		fmt.Fprintf(&sb, "      Scan      : %s\n", s.opts.Direction)
		fmt.Fprintf(&sb, "      Duration  : %s\n", s.seconds(s.grid.Len()))
	}

	sb.WriteString("\n")

	if s.kernel != nil {
		fmt.Fprintf(&sb, "OSC   Kernel    : %s\n", filepath.Base(s.kernelPath))
	} else {
		fmt.Fprintf(&sb, "OSC   Waveform  : %s Wave\n", s.osc.Waveform)
		fmt.Fprintf(&sb, "      Frequency : %g Hz\n", s.osc.Frequency)
	}
	fmt.Fprintf(&sb, "      Samples   : %d\n", s.osc.Samples)
	fmt.Fprintf(&sb, "      Duration  : %s\n", s.seconds(s.osc.Samples))

	if s.blend != nil {
		fmt.Fprintf(&sb, "\nMIX   Samples   : %d\n", len(s.blend))
		fmt.Fprintf(&sb, "      Duration  : %s\n", s.seconds(len(s.blend)))
	}

	sb.WriteString("\n" + rule + "\n")

	return sb.String()
}

func (s *Session) seconds(n int) string {
	return fmt.Sprintf("%.2f seconds (2 d.p.)", float64(n)/float64(s.opts.SampleRate))
}
