// SPDX-License-Identifier: EPL-2.0

// Package stereosig turns decoded audio into stereo signal buffers.
//
// The buffer itself, its frame type and the generic downmix live in the
// signal subpackage. This package wires the bundled decoders to it.
//
// # Supported Formats
//
// NewRegistry registers:
//   - WAV (8, 16, 24 and 32-bit PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// Headerless PCM is read by formats/pcm, which skips the float32 stage
// entirely.
//
// # Quick Start
//
//	file, _ := os.Open("audio.ogg")
//	src, _ := stereosig.NewRegistry().Decode("ogg", file)
//	defer src.Close()
//
//	buffer, err := stereosig.DownmixAt(src, 48000)
//	if err != nil {
//	    // the stream ended early; buffer holds what was read
//	}
//
// Every frame of the result carries the sum of all input channels on both
// sides. Summing is not averaging: two full scale channels give 2.0.
//
// # Pipeline
//
//	audio.Source  ->  audio.Resample  ->  audio.FrameReader  ->  signal.FromSource
//
// audio.StereoSource runs the other way, so a buffer can be resampled or
// written with wav.Encode.
package stereosig
