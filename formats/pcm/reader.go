// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"

	"github.com/ik5/stereosig/signal"
)

// Reader decodes headerless little-endian interleaved PCM, one frame per
// Next call. It implements signal.Source[signal.PCM[S]], so it can be fed to
// signal.FromSource without going through float32 first.
//
// A trailing partial frame ends the stream and is discarded.
type Reader[S signal.Sample] struct {
	r   *bufio.Reader
	err error

	frame     signal.PCM[S]
	exhausted bool
}

// NewReader reads frames of the given channel count from r. A reader with
// fewer than one channel is exhausted from the start and reports
// ErrInvalidChannels from Err.
func NewReader[S signal.Sample](r io.Reader, channels int) *Reader[S] {
	if channels < 1 {
		return &Reader[S]{exhausted: true, err: ErrInvalidChannels}
	}

	return &Reader[S]{
		r:     bufio.NewReader(r),
		frame: make(signal.PCM[S], channels),
	}
}

// Next decodes the next frame. The returned slice is overwritten by the
// following call.
func (p *Reader[S]) Next() signal.PCM[S] {
	if p.exhausted {
		clear(p.frame)
		return p.frame
	}

	err := binary.Read(p.r, binary.LittleEndian, p.frame)
	switch {
	case err == nil:
		return p.frame
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
	default:
		p.err = err
		slog.Warn("pcm reader: read failed, ending stream",
			"error", err,
			"channels", len(p.frame),
		)
	}

	p.exhausted = true
	clear(p.frame)

	return p.frame
}

func (p *Reader[S]) IsExhausted() bool { return p.exhausted }

// Err returns the read error that ended the stream early, if any.
func (p *Reader[S]) Err() error { return p.err }
