// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// # Output Format
//
//   - float32 samples in [-1.0, 1.0]
//   - always 2 channels, since go-mp3 duplicates mono streams
//   - the sample rate of the file
//
// # Decoding
//
//	file, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrInvalidMP3)
//	}
//
// To fold the two channels into a single mixed value per frame, read the
// source through audio.FrameReader and signal.FromSource.
//
// # Limitations
//
// Encoding is not supported.
package mp3
