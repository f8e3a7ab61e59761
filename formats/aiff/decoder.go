// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/stereosig/audio"
	"github.com/ik5/stereosig/formats/internal/intpcm"
	"github.com/ik5/stereosig/signal"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := intpcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	normalize, err := normalizer(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	src, err := intpcm.New(dec, normalize)
	if errors.Is(err, intpcm.ErrNoFormat) {
		return nil, ErrUnsupportedAiffLayout
	}

	return src, err
}

// Encode drains src into ws as big-endian PCM at the given bit depth.
func Encode(ws io.WriteSeeker, src audio.Source, bitDepth int) error {
	if _, err := normalizer(bitDepth); err != nil {
		return err
	}
	if src.Channels() <= 0 {
		return audio.ErrNoChannels
	}

	enc := aiff.NewEncoder(ws, src.SampleRate(), bitDepth, src.Channels())
	if err := intpcm.Drain(enc, src, bitDepth, intpcm.Quantizer(bitDepth, 0)); err != nil {
		return fmt.Errorf("encoding aiff: %w", err)
	}

	return nil
}

// AIFF samples are signed at every bit depth.
func normalizer(bitDepth int) (intpcm.Normalizer, error) {
	switch bitDepth {
	case 8:
		return func(v int) float32 { return signal.ToFloat32(int8(v)) }, nil
	case 16:
		return func(v int) float32 { return signal.ToFloat32(int16(v)) }, nil
	case 24:
		return func(v int) float32 { return signal.ToFloat32(int32(v) << 8) }, nil
	case 32:
		return func(v int) float32 { return signal.ToFloat32(int32(v)) }, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}
