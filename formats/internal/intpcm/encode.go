// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/stereosig/audio"
)

// Writer is the subset of the go-audio encoders used here.
type Writer interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Quantizer returns a function mapping [-1, 1] onto the signed integer range
// of bitDepth, rounding to nearest and clipping, then adding offset. NaN maps
// to offset.
func Quantizer(bitDepth, offset int) func(float32) int {
	scale := math.Ldexp(1, bitDepth-1)
	lo, hi := -scale, scale-1

	return func(v float32) int {
		x := math.Round(float64(v) * scale)
		if math.IsNaN(x) {
			return offset
		}
		x = max(lo, min(hi, x))
		return int(x) + offset
	}
}

// Drain reads src until io.EOF, quantizes every sample and writes it to enc,
// then closes enc.
func Drain(enc Writer, src audio.Source, bitDepth int, quantize func(float32) int) error {
	channels := src.Channels()

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	samples := make([]float32, size)
	intBuf := &goaudio.IntBuffer{
		Data:           make([]int, size),
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		SourceBitDepth: bitDepth,
	}

	for {
		n, readErr := src.ReadSamples(samples)
		if n > 0 {
			intBuf.Data = intBuf.Data[:n]
			for i, v := range samples[:n] {
				intBuf.Data[i] = quantize(v)
			}
			if err := enc.Write(intBuf); err != nil {
				return fmt.Errorf("writing samples: %w", err)
			}
			intBuf.Data = intBuf.Data[:cap(intBuf.Data)]
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return fmt.Errorf("reading source: %w", readErr)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing: %w", err)
	}

	return nil
}
