// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ik5/stereosig/signal"
)

const (
	// framesPerBlock is how many frames FrameReader pulls from its Source at
	// once.
	framesPerBlock = 1024
	// maxEmptyReads bounds how many consecutive (0, nil) reads are tolerated
	// before the source is treated as finished.
	maxEmptyReads = 64
)

// FrameReader turns an interleaved Source into a frame-at-a-time
// signal.Source. The stream ends when no complete frame remains; a trailing
// partial frame is discarded.
//
// Read failures other than io.EOF also end the stream. They are logged and
// kept for Err.
type FrameReader struct {
	src      Source
	channels int

	buf      []float32
	pos, end int
	eof      bool
	err      error

	frame     signal.PCM[float32]
	silence   signal.PCM[float32]
	exhausted bool
}

// NewFrameReader wraps src. It fails with ErrNoChannels when src reports a
// non-positive channel count.
func NewFrameReader(src Source) (*FrameReader, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	return &FrameReader{
		src:      src,
		channels: channels,
		buf:      make([]float32, channels*framesPerBlock),
		frame:    make(signal.PCM[float32], channels),
		silence:  make(signal.PCM[float32], channels),
	}, nil
}

// Next returns the next frame. The returned slice is reused by the following
// call; copy it to keep it.
func (r *FrameReader) Next() signal.PCM[float32] {
	if r.end-r.pos < r.channels && !r.fill() {
		r.exhausted = true
		return r.silence
	}

	copy(r.frame, r.buf[r.pos:r.pos+r.channels])
	r.pos += r.channels
	r.exhausted = false

	return r.frame
}

func (r *FrameReader) IsExhausted() bool { return r.exhausted }

// Err returns the first read error other than io.EOF.
func (r *FrameReader) Err() error { return r.err }

func (r *FrameReader) Channels() int { return r.channels }

// fill compacts the buffer and reads until a whole frame is available.
func (r *FrameReader) fill() bool {
	leftover := copy(r.buf, r.buf[r.pos:r.end])
	r.pos, r.end = 0, leftover

	for empty := 0; r.end < r.channels && !r.eof; {
		room := (len(r.buf) - r.end) / r.channels * r.channels
		n, err := r.src.ReadSamples(r.buf[r.end : r.end+room])
		r.end += n

		switch {
		case errors.Is(err, io.EOF):
			r.eof = true
		case err != nil:
			r.eof = true
			r.err = err
			slog.Warn("audio frame reader: source failed, ending stream",
				"error", err,
				"channels", r.channels,
				"sampleRate", r.src.SampleRate(),
			)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				slog.Debug("audio frame reader: source stalled, ending stream",
					"emptyReads", empty,
				)
				r.eof = true
			}
		default:
			empty = 0
		}
	}

	return r.end >= r.channels
}
