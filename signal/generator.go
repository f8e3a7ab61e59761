// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// Generator produces the frame at a given position. Implementations must be
// pure: the same position always yields the same frame.
type Generator interface {
	GenerateFrame(pos int) Frame
}

// GeneratorFunc adapts an ordinary function to a Generator.
type GeneratorFunc func(pos int) Frame

func (fn GeneratorFunc) GenerateFrame(pos int) Frame { return fn(pos) }

// Sine is a sine tone written identically to both channels.
type Sine struct {
	Frequency  float64 // Hz
	SampleRate float64 // Hz
	Amplitude  float64 // linear, 1.0 is full scale
	Phase      float64 // radians
}

func (g Sine) GenerateFrame(pos int) Frame {
	if g.SampleRate <= 0 {
		return Silence
	}

	omega := 2 * math.Pi * g.Frequency / g.SampleRate
	return Mono(float32(g.Amplitude * math.Sin(omega*float64(pos)+g.Phase)))
}

// Constant yields the same frame at every position.
type Constant Frame

func (c Constant) GenerateFrame(int) Frame { return Frame(c) }
