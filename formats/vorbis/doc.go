// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples are passed through without
// conversion. Channel count and sample rate come from the stream headers;
// multichannel files keep every channel, which the downmix then sums.
//
//	file, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrInvalidVorbis)
//	}
package vorbis
