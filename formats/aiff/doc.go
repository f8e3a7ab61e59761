// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes and encodes AIFF (Audio Interchange File Format) files
// using github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - signed PCM at 8, 16, 24 and 32 bits
//   - any channel count and sample rate
//
// AIFF-C (compressed) files are not supported.
//
// # Decoding
//
//	file, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not an AIFF file
//	}
//
// Samples come back as float32 in [-1.0, 1.0], normalized with
// signal.ToFloat32 on the stored integer type.
//
// # AIFF vs. WAV
//
// AIFF is big-endian and stores every bit depth signed, while WAV is
// little-endian and stores 8-bit samples unsigned. The go-audio decoders hide
// the byte order; the normalizers here handle the signedness.
package aiff
