// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds sources shared by tests across packages.
// It imports neither audio nor signal so both can use it from internal tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by a MockSource configured with FailAfter.
var ErrInjected = errors.New("audiotest: injected read failure")

// MockSource generates interleaved float32 audio and implements audio.Source.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float32

	// FailAfter, when positive, makes ReadSamples return ErrInjected once
	// that many frames were produced.
	FailAfter int
	// Chunk, when positive, caps the frames returned by a single read.
	Chunk int
}

// NewMockSource creates a source of totalFrames frames whose samples are
// computed by waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalFrames, 0)
}

func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.FailAfter > 0 && m.generated >= m.FailAfter {
		return 0, ErrInjected
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	if m.Chunk > 0 {
		frames = min(frames, m.Chunk)
	}
	if m.FailAfter > 0 {
		frames = min(frames, m.FailAfter-m.generated)
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	n := frames * m.channels
	if m.generated >= m.totalFrames {
		return n, io.EOF
	}
	return n, nil
}
