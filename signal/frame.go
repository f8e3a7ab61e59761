// SPDX-License-Identifier: EPL-2.0

package signal

// Frame is one stereo sample pair: index 0 is left, index 1 is right.
type Frame [2]float32

// Silence is the frame with every channel at zero.
var Silence = Frame{}

// Mono returns a frame carrying v on both channels.
func Mono(v float32) Frame {
	return Frame{v, v}
}

func (f Frame) Left() float32  { return f[0] }
func (f Frame) Right() float32 { return f[1] }

// Channels returns the two samples as a slice, so a Frame satisfies
// Channeler[float32] and can itself be downmixed.
func (f Frame) Channels() []float32 {
	return f[:]
}

// Add sums two frames channel by channel.
func (f Frame) Add(o Frame) Frame {
	return Frame{f[0] + o[0], f[1] + o[1]}
}

// Scale multiplies both channels by a.
func (f Frame) Scale(a float32) Frame {
	return Frame{f[0] * a, f[1] * a}
}
