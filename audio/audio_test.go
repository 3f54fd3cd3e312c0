// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/sonipix/internal/audiotest"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register(decoder, "wav")

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_ExtensionNormalized(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "aiff"}
	registry.Register(decoder, ".AIFF", "aif")

	for _, ext := range []string{"aiff", ".aiff", "AIF", ".Aif"} {
		if got, ok := registry.Get(ext); !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v", ext, got, ok)
		}
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "ogg"}
	registry.Register(decoder, "ogg")

	got, err := registry.Lookup("/tmp/Some Song.OGG")
	if err != nil || got != decoder {
		t.Errorf("Lookup() = %v, %v", got, err)
	}

	_, err = registry.Lookup("notes.txt")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Lookup(txt) error = %v, want ErrUnknownFormat", err)
	}

	_, err = registry.Lookup("noextension")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Lookup(no ext) error = %v, want ErrUnknownFormat", err)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(&mockDecoder{}, "wav")
	registry.Register(&mockDecoder{}, "mp3", "ogg")

	got := registry.Formats()
	want := []string{"mp3", "ogg", "wav"}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register(first, "wav")
	registry.Register(second, "wav")

	got, _ := registry.Get("wav")
	if got != second {
		t.Error("Registry.Register() did not overwrite existing decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(&mockDecoder{}, string(rune('a'+i%26)))
		}()
		go func() {
			defer wg.Done()
			registry.Get(string(rune('a' + i%26)))
		}()
	}

	wg.Wait()

	if n := len(registry.Formats()); n != 26 {
		t.Errorf("Formats() len = %d, want 26", n)
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{ErrInvalidDstSize, ErrUnknownFormat, ErrEmptySource}
	for i, a := range errs {
		for j, b := range errs {
			if (i == j) != errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = %v", a, b, errors.Is(a, b))
			}
		}
	}

	wrapped := errors.Join(ErrEmptySource, errors.New("context"))
	if !errors.Is(wrapped, ErrEmptySource) {
		t.Error("errors.Is() failed for joined ErrEmptySource")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register(&mockDecoder{}, "wav")

	b.ReportAllocs()
	for range b.N {
		registry.Get("wav")
	}
}
