// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/stereosig/internal/audiotest"
	"github.com/ik5/stereosig/signal"
)

func drainFrames(t *testing.T, r *FrameReader) []signal.PCM[float32] {
	t.Helper()

	var out []signal.PCM[float32]
	for range 1 << 20 {
		f := r.Next()
		if r.IsExhausted() {
			return out
		}
		out = append(out, slices.Clone(f))
	}

	t.Fatal("FrameReader never reported exhaustion")
	return nil
}

func TestFrameReader_ReadsEveryFrame(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 3, 2500, func(frame, channel int) float32 {
		return float32(frame) + float32(channel)/10
	})

	r, err := NewFrameReader(src)
	if err != nil {
		t.Fatalf("NewFrameReader() error = %v", err)
	}

	frames := drainFrames(t, r)
	if len(frames) != 2500 {
		t.Fatalf("got %d frames, want 2500", len(frames))
	}

	for i, f := range frames {
		for c := range 3 {
			want := float32(i) + float32(c)/10
			if f[c] != want {
				t.Fatalf("frame %d channel %d = %v, want %v", i, c, f[c], want)
			}
		}
	}

	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
}

func TestFrameReader_SmallChunks(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 10, 0.25)
	src.Chunk = 1

	r, err := NewFrameReader(src)
	if err != nil {
		t.Fatalf("NewFrameReader() error = %v", err)
	}

	if n := len(drainFrames(t, r)); n != 10 {
		t.Errorf("got %d frames, want 10", n)
	}
}

func TestFrameReader_EmptySource(t *testing.T) {
	t.Parallel()

	r, err := NewFrameReader(audiotest.NewSilentSource(8000, 2, 0))
	if err != nil {
		t.Fatalf("NewFrameReader() error = %v", err)
	}

	f := r.Next()
	if !r.IsExhausted() {
		t.Fatal("IsExhausted() = false on empty source")
	}
	if len(f) != 2 || f[0] != 0 || f[1] != 0 {
		t.Errorf("Next() on exhausted reader = %v, want silence", f)
	}

	// Stays exhausted.
	r.Next()
	if !r.IsExhausted() {
		t.Error("IsExhausted() = false after second Next")
	}
}

func TestFrameReader_ReadError(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 100, 0.5)
	src.FailAfter = 7

	r, err := NewFrameReader(src)
	if err != nil {
		t.Fatalf("NewFrameReader() error = %v", err)
	}

	if n := len(drainFrames(t, r)); n != 7 {
		t.Errorf("got %d frames, want 7", n)
	}
	if !errors.Is(r.Err(), audiotest.ErrInjected) {
		t.Errorf("Err() = %v, want ErrInjected", r.Err())
	}
}

type partialSource struct {
	audiotest.MockSource
	sent bool
}

func (p *partialSource) ReadSamples(dst []float32) (int, error) {
	if p.sent {
		return 0, io.EOF
	}
	p.sent = true
	// One full stereo frame plus a dangling left sample.
	dst[0], dst[1], dst[2] = 0.1, 0.2, 0.3
	return 3, io.EOF
}

func TestFrameReader_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	src := &partialSource{MockSource: *audiotest.NewSilentSource(8000, 2, 0)}

	r, err := NewFrameReader(src)
	if err != nil {
		t.Fatalf("NewFrameReader() error = %v", err)
	}

	frames := drainFrames(t, r)
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if frames[0][0] != 0.1 || frames[0][1] != 0.2 {
		t.Errorf("frame = %v, want [0.1 0.2]", frames[0])
	}
}

type stalledSource struct {
	audiotest.MockSource
	reads int
}

func (s *stalledSource) ReadSamples([]float32) (int, error) {
	s.reads++
	return 0, nil
}

func TestFrameReader_StalledSource(t *testing.T) {
	t.Parallel()

	src := &stalledSource{MockSource: *audiotest.NewSilentSource(8000, 1, 0)}

	r, err := NewFrameReader(src)
	if err != nil {
		t.Fatalf("NewFrameReader() error = %v", err)
	}

	r.Next()
	if !r.IsExhausted() {
		t.Error("IsExhausted() = false for a source that never delivers")
	}
	if src.reads != maxEmptyReads {
		t.Errorf("reads = %d, want %d", src.reads, maxEmptyReads)
	}
}

func TestFrameReader_NoChannels(t *testing.T) {
	t.Parallel()

	_, err := NewFrameReader(audiotest.NewSilentSource(8000, 0, 10))
	if !errors.Is(err, ErrNoChannels) {
		t.Errorf("NewFrameReader() error = %v, want ErrNoChannels", err)
	}
}

func TestFrameReader_Downmix(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 50, func(_, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})

	r, err := NewFrameReader(src)
	if err != nil {
		t.Fatalf("NewFrameReader() error = %v", err)
	}

	s := signal.FromSource[float32, signal.PCM[float32]](r)
	if s.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", s.Len())
	}

	for i := range s.Len() {
		f, _ := s.Frame(i)
		if f.Left() < 0.9999 || f.Left() > 1.0001 || f.Left() != f.Right() {
			t.Fatalf("frame %d = %v, want [1 1]", i, f)
		}
	}
}

func BenchmarkFrameReader_Next(b *testing.B) {
	src := audiotest.NewSineSource(48000, 2, 48000, 440)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		src.Reset()
		r, _ := NewFrameReader(src)
		for {
			r.Next()
			if r.IsExhausted() {
				break
			}
		}
	}
}
