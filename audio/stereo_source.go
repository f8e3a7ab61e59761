// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/stereosig/signal"
)

// StereoSource plays a signal.Stereo buffer back as an interleaved two
// channel Source, so buffers can be resampled or encoded like decoded audio.
type StereoSource struct {
	cursor     *signal.Cursor
	sampleRate int
}

// NewStereoSource reads s from its first frame at the given sample rate.
func NewStereoSource(s *signal.Stereo, sampleRate int) *StereoSource {
	return &StereoSource{
		cursor:     s.Cursor(),
		sampleRate: sampleRate,
	}
}

func (s *StereoSource) SampleRate() int { return s.sampleRate }
func (s *StereoSource) Channels() int   { return 2 }
func (s *StereoSource) BufSize() int    { return 4096 }
func (s *StereoSource) Close() error    { return nil }

func (s *StereoSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	n := 0
	for n < len(dst) {
		f := s.cursor.Next()
		if s.cursor.IsExhausted() {
			return n, io.EOF
		}
		dst[n], dst[n+1] = f.Left(), f.Right()
		n += 2
	}

	if s.cursor.Remaining() == 0 {
		return n, io.EOF
	}
	return n, nil
}
