// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/ik5/sonipix/audio"
	"github.com/ik5/sonipix/formats/aiff"
	"github.com/ik5/sonipix/formats/mp3"
	"github.com/ik5/sonipix/formats/vorbis"
	"github.com/ik5/sonipix/formats/wav"
)

// Decoders returns a registry with every audio format a sample kernel may
// be read from.
func Decoders() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(wav.Decoder{}, "wav", "wave")
	reg.Register(aiff.Decoder{}, "aif", "aiff")
	reg.Register(mp3.Decoder{}, "mp3")
	reg.Register(vorbis.Decoder{}, "ogg", "oga")

	return reg
}
