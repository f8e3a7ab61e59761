// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/stereosig/signal"
)

var (
	ErrUnknownFormat   = errors.New("unknown raw PCM format")
	ErrInvalidChannels = errors.New("raw PCM needs at least one channel")
)

// Format names a raw sample encoding.
type Format string

const (
	S8    Format = "s8"
	U8    Format = "u8"
	S16LE Format = "s16le"
	U16LE Format = "u16le"
	S32LE Format = "s32le"
	U32LE Format = "u32le"
	F32LE Format = "f32le"
	F64LE Format = "f64le"
)

var formats = []Format{S8, U8, S16LE, U16LE, S32LE, U32LE, F32LE, F64LE}

// Formats lists the supported encodings.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ParseFormat accepts the ffmpeg-style names listed by Formats, in any case.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Downmix reads r to the end as the given format and sums every frame into a
// stereo buffer with signal.FromSource.
func Downmix(r io.Reader, f Format, channels int) (*signal.Stereo, error) {
	switch f {
	case S8:
		return downmix[int8](r, channels)
	case U8:
		return downmix[uint8](r, channels)
	case S16LE:
		return downmix[int16](r, channels)
	case U16LE:
		return downmix[uint16](r, channels)
	case S32LE:
		return downmix[int32](r, channels)
	case U32LE:
		return downmix[uint32](r, channels)
	case F32LE:
		return downmix[float32](r, channels)
	case F64LE:
		return downmix[float64](r, channels)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

func downmix[S signal.Sample](r io.Reader, channels int) (*signal.Stereo, error) {
	rd := NewReader[S](r, channels)
	out := signal.FromSource[S, signal.PCM[S]](rd)
	if err := rd.Err(); err != nil {
		return out, fmt.Errorf("reading raw pcm: %w", err)
	}

	return out, nil
}
