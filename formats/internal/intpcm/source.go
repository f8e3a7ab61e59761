// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts the go-audio integer PCM decoders (WAV, AIFF) to
// audio.Source.
package intpcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// ErrNoFormat is returned when the decoder exposes no usable format.
var ErrNoFormat = errors.New("decoder reported no PCM format")

// Reader is the subset of the go-audio decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Normalizer maps one decoded integer sample to [-1, 1].
type Normalizer func(v int) float32

// Source reads interleaved integer samples and normalizes them to float32.
type Source struct {
	dec        Reader
	format     *goaudio.Format
	normalize  Normalizer
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func New(dec Reader, normalize Normalizer) (*Source, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrNoFormat
	}

	return &Source{
		dec:        dec,
		format:     format,
		normalize:  normalize,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
	}, nil
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = s.normalize(v)
	}

	switch {
	case err != nil && !errors.Is(err, io.EOF):
		return n, fmt.Errorf("reading PCM: %w", err)
	case n == 0, n < len(dst):
		// go-audio signals the end with a short read and a nil error.
		return n, io.EOF
	default:
		return n, nil
	}
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek. The go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
