// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16, 24 and 32-bit (signed)
//   - any channel count and sample rate
//
// IEEE float and compressed WAV files are rejected with
// ErrUnsupportedWavFormat.
//
// # Decoding
//
//	file, _ := os.Open("audio.wav")
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples come back as float32 in [-1.0, 1.0]. The go-audio decoder needs to
// seek, so a plain io.Reader is buffered in memory first.
//
// # Encoding
//
// Encode drains any audio.Source into a file:
//
//	out, _ := os.Create("out.wav")
//	defer out.Close()
//	err := wav.Encode(out, audio.NewStereoSource(buffer, 44100), 16)
//
// Values outside [-1.0, 1.0] are clipped to the integer range of the bit
// depth.
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrUnsupportedWavFormat: the format tag is not integer PCM
//   - ErrUnsupportedBitDepth: the bit depth is not 8, 16, 24 or 32
//   - ErrUnsupportedWavLayout: the header carries no channel or rate
package wav
