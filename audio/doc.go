// SPDX-License-Identifier: EPL-2.0

// Package audio connects decoded PCM streams to the signal package.
//
// It contains:
//   - Source, the interleaved float32 pull interface every decoder returns
//   - Registry, a format key to Decoder table
//   - Resampler for sample rate conversion
//   - FrameReader, which turns a Source into a signal.Source of frames
//   - StereoSource, which plays a signal.Stereo buffer back as a Source
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns the number of float32 values written, not frames, and
// io.EOF once the stream is finished.
//
// # From a decoder to a stereo buffer
//
//	src, _ := registry.Decode("ogg", file)
//	frames, _ := audio.NewFrameReader(audio.Resample(src, 48000))
//	stereo := signal.FromSource[float32, signal.PCM[float32]](frames)
//	if err := frames.Err(); err != nil {
//	    // the stream ended early
//	}
//
// FrameReader reports exhaustion as soon as no complete frame is left. A read
// error ends the stream the same way; it is logged with log/slog and returned
// by Err.
//
// # Resampling
//
// The Resampler uses Catmull-Rom interpolation and a one-pole low-pass filter
// when downsampling. Resample skips the work when the rates already match.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. Decoders normalize integer PCM with
// signal.ToFloat32.
package audio
