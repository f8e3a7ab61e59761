// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Resampler converts a Source to another sample rate with Catmull-Rom
// interpolation, keeping the channel count. When downsampling, each input
// frame first passes through a one-pole low-pass filter.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[1] and window[2] bracket the output position; window[0] and
	// window[3] are the outer taps.
	window [4][]float32
	filled [4]bool
	primed bool

	pos    float64 // fractional offset between window[1] and window[2]
	srcBuf []float32
	eof    bool

	lowpass     bool
	filterAlpha float32
	filterState []float32
}

// Resample wraps src in a Resampler unless it already runs at dstRate or
// dstRate is not positive, in which case src is returned as is.
func Resample(src Source, dstRate int) Source {
	if dstRate <= 0 || src.SampleRate() == dstRate {
		return src
	}
	return NewResampler(src, dstRate)
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		step:        step,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		lowpass:     step > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readRaw reads one unfiltered source frame into dst. ok is false when no
// full frame was available.
func (r *Resampler) readRaw(dst []float32) (ok bool, err error) {
	n, err := r.src.ReadSamples(r.srcBuf)
	if n == r.channels {
		copy(dst, r.srcBuf)
		ok = true
	}

	if errors.Is(err, io.EOF) {
		r.eof = true
		return ok, nil
	}
	if err != nil {
		return ok, fmt.Errorf("reading resampler source: %w", err)
	}

	return ok, nil
}

// readFrame is readRaw followed by the low-pass filter when downsampling.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	ok, err := r.readRaw(dst)
	if ok && r.lowpass {
		for c := range r.channels {
			dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}
	return ok, err
}

// prime loads the first three source frames into window[1..3]. window[0]
// repeats the first frame since nothing precedes it.
func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < len(r.window) && !r.eof; i++ {
		var (
			ok  bool
			err error
		)
		if i == 1 && r.lowpass {
			// Seed the filter with the first raw frame to avoid a fade-in.
			ok, err = r.readRaw(r.window[1])
			copy(r.filterState, r.window[1])
		} else {
			ok, err = r.readFrame(r.window[i])
		}
		if err != nil {
			return err
		}
		r.filled[i] = ok
	}

	if !r.filled[1] {
		return io.EOF
	}
	copy(r.window[0], r.window[1])
	r.filled[0] = true

	return nil
}

// advance shifts the window one frame forward.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.filled[:], r.filled[1:])
	r.window[3] = first
	r.filled[3] = false

	if r.eof {
		return nil
	}

	ok, err := r.readFrame(r.window[3])
	r.filled[3] = ok
	return err
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	want := len(dst) / r.channels
	written := 0

	for written < want {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return r.finish(written, err)
			}
		}

		if !r.filled[1] {
			return r.finish(written, io.EOF)
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range r.channels {
			// Missing neighbours past the end of the stream hold the last frame.
			y1 := r.window[1][c]
			y0, y2 := y1, y1
			if r.filled[0] {
				y0 = r.window[0][c]
			}
			if r.filled[2] {
				y2 = r.window[2][c]
			}
			y3 := y2
			if r.filled[3] {
				y3 = r.window[3][c]
			}
			out[c] = catmullRom(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

func (r *Resampler) finish(written int, err error) (int, error) {
	return written * r.channels, err
}

// catmullRom interpolates between y1 and y2 at x in [0, 1].
func catmullRom(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
