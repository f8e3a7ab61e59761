// SPDX-License-Identifier: EPL-2.0

// Package signal implements a finite stereo frame buffer.
//
// A Stereo buffer is built in one of three ways:
//
//	// empty, filled with Push
//	s := signal.New()
//	s.Push(signal.Frame{0.25, -0.25})
//
//	// synthesized from a position indexed generator
//	tone := signal.FromGenerator(signal.Sine{Frequency: 440, SampleRate: 48000, Amplitude: 0.5}, 48000)
//
//	// downmixed from any Source whose frames expose their channels
//	mixed := signal.FromSource[int16, signal.PCM[int16]](pcmReader)
//
// # Sources
//
// Source is a pull interface: Next produces a frame and IsExhausted, asked
// afterwards, tells whether that frame is past the end of the stream. Frames
// may carry any channel count and any Sample type; ToFloat32 normalizes every
// sample to [-1, 1] before mixing.
//
// # Downmix policy
//
// FromSource sums the normalized channels of each input frame and writes the
// sum to both output channels. It does not divide by the channel count, so a
// full scale stereo input peaks at 2.0.
//
// # Reading a buffer back
//
// A Stereo buffer is itself a Source[Frame], but a degenerate one: Next always
// returns the first frame (or Silence). Cursor returns a proper advancing
// source over the same frames.
//
// # Persistence
//
// Stereo marshals to JSON and YAML as {"frames": [[l, r], ...]} and decodes
// back to an identical frame sequence.
package signal
