// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/stereosig/audio"
	"github.com/ik5/stereosig/formats/internal/intpcm"
	"github.com/ik5/stereosig/signal"
)

const pcmFormat = 1

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedWavFormat, dec.WavAudioFormat)
	}

	normalize, err := normalizer(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	src, err := intpcm.New(dec, normalize)
	if errors.Is(err, intpcm.ErrNoFormat) {
		return nil, ErrUnsupportedWavLayout
	}

	return src, err
}

// normalizer picks the sample type go-audio's integers actually hold. WAV
// stores 8-bit samples unsigned and everything wider signed.
func normalizer(bitDepth int) (intpcm.Normalizer, error) {
	switch bitDepth {
	case 8:
		return func(v int) float32 { return signal.ToFloat32(uint8(v)) }, nil
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
