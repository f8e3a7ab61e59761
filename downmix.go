// SPDX-License-Identifier: EPL-2.0

package stereosig

import (
	"fmt"
	"log/slog"

	"github.com/ik5/stereosig/audio"
	"github.com/ik5/stereosig/formats/aiff"
	"github.com/ik5/stereosig/formats/mp3"
	"github.com/ik5/stereosig/formats/vorbis"
	"github.com/ik5/stereosig/formats/wav"
	"github.com/ik5/stereosig/signal"
)

// NewRegistry returns a registry with every bundled decoder, keyed by file
// extension: wav, mp3, ogg, aiff and aif.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// Downmix reads src to the end and sums the channels of every frame into a
// stereo buffer, as signal.FromSource does. src is not closed.
//
// If src fails before io.EOF, the frames read so far are returned together
// with the error.
func Downmix(src audio.Source) (*signal.Stereo, error) {
	frames, err := audio.NewFrameReader(src)
	if err != nil {
		return nil, err
	}

	out := signal.FromSource[float32, signal.PCM[float32]](frames)
	if err := frames.Err(); err != nil {
		return out, fmt.Errorf("downmixing: %w", err)
	}

	return out, nil
}

// DownmixAt resamples src to targetRate before downmixing. A non-positive
// targetRate, or one equal to the source rate, skips resampling.
func DownmixAt(src audio.Source, targetRate int) (*signal.Stereo, error) {
	if targetRate > 0 && targetRate != src.SampleRate() {
		slog.Debug("resampling before downmix",
			"from", src.SampleRate(),
			"to", targetRate,
			"channels", src.Channels(),
		)
	}

	return Downmix(audio.Resample(src, targetRate))
}
