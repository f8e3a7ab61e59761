// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/stereosig/audio"
	"github.com/ik5/stereosig/formats/internal/intpcm"
)

// Encode drains src into ws as integer PCM at the given bit depth (8, 16, 24
// or 32). Samples outside [-1, 1] are clipped. ws must be seekable so the
// chunk sizes can be patched once the data is written.
func Encode(ws io.WriteSeeker, src audio.Source, bitDepth int) error {
	quantize, err := quantizer(bitDepth)
	if err != nil {
		return err
	}

	if src.Channels() <= 0 {
		return audio.ErrNoChannels
	}

	enc := wav.NewEncoder(ws, src.SampleRate(), bitDepth, src.Channels(), pcmFormat)
	if err := intpcm.Drain(enc, src, bitDepth, quantize); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	return nil
}

func quantizer(bitDepth int) (func(float32) int, error) {
	switch bitDepth {
	case 8:
		// 8-bit WAV is unsigned.
		return intpcm.Quantizer(8, 128), nil
	case 16, 24, 32:
		return intpcm.Quantizer(bitDepth, 0), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}
