// SPDX-License-Identifier: EPL-2.0

// Package analysis computes level statistics over a stereo buffer.
package analysis

import (
	"math"
	"time"

	"github.com/ik5/stereosig/signal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Channel holds the statistics of one side of a buffer.
type Channel struct {
	Peak float64 `json:"peak" yaml:"peak"`
	RMS  float64 `json:"rms" yaml:"rms"`
	DC   float64 `json:"dc" yaml:"dc"`
}

// Summary describes a whole buffer. Both channels are zero for an empty one.
type Summary struct {
	Frames int     `json:"frames" yaml:"frames"`
	Left   Channel `json:"left" yaml:"left"`
	Right  Channel `json:"right" yaml:"right"`
}

// Summarize walks s once per channel.
func Summarize(s *signal.Stereo) Summary {
	frames := s.Frames()
	sum := Summary{Frames: len(frames)}
	if len(frames) == 0 {
		return sum
	}

	left := make([]float64, len(frames))
	right := make([]float64, len(frames))
	for i, f := range frames {
		left[i] = float64(f.Left())
		right[i] = float64(f.Right())
	}

	sum.Left = channel(left)
	sum.Right = channel(right)

	return sum
}

func channel(x []float64) Channel {
	return Channel{
		Peak: math.Max(math.Abs(floats.Max(x)), math.Abs(floats.Min(x))),
		RMS:  floats.Norm(x, 2) / math.Sqrt(float64(len(x))),
		DC:   stat.Mean(x, nil),
	}
}

// Duration converts the frame count to playing time at sampleRate.
func (s Summary) Duration(sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}

	return time.Duration(s.Frames) * time.Second / time.Duration(sampleRate)
}

// PeakDBFS returns the louder channel's peak in decibels relative to full
// scale, or -Inf for silence.
func (s Summary) PeakDBFS() float64 {
	peak := math.Max(s.Left.Peak, s.Right.Peak)
	if peak == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(peak)
}
