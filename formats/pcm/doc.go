// SPDX-License-Identifier: EPL-2.0

// Package pcm reads headerless little-endian PCM.
//
// Reader is generic over the stored sample type and hands frames of that
// type straight to signal.FromSource, which normalizes each value with
// signal.ToFloat32:
//
//	rd := pcm.NewReader[int16](file, 2)
//	stereo := signal.FromSource[int16, signal.PCM[int16]](rd)
//
// When the sample type is only known at run time, ParseFormat and Downmix
// pick the instantiation:
//
//	f, err := pcm.ParseFormat("s16le")
//	stereo, err := pcm.Downmix(file, f, 2)
package pcm
