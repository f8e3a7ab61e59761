// SPDX-License-Identifier: EPL-2.0

package signal

// Stereo is a finite, append-only sequence of stereo frames.
// Insertion order is playback order. The zero value is an empty buffer.
type Stereo struct {
	frames []Frame
}

// New returns an empty buffer.
func New() *Stereo {
	return &Stereo{}
}

// FromGenerator synthesizes numFrames frames by calling gen at positions
// 0, 1, ..., numFrames-1 in that order.
func FromGenerator(gen Generator, numFrames int) *Stereo {
	if numFrames <= 0 {
		return New()
	}

	frames := make([]Frame, 0, numFrames)
	for i := range numFrames {
		frames = append(frames, gen.GenerateFrame(i))
	}

	return &Stereo{frames: frames}
}

// Frame returns the frame at idx. ok is false, and the frame is Silence,
// when idx is outside [0, Len()).
func (s *Stereo) Frame(idx int) (f Frame, ok bool) {
	if idx < 0 || idx >= len(s.frames) {
		return Silence, false
	}
	return s.frames[idx], true
}

// Len is the number of stored frames.
func (s *Stereo) Len() int { return len(s.frames) }

// Push appends f at the tail.
func (s *Stereo) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// Frames returns a copy of the stored frames.
func (s *Stereo) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Next returns the first frame, or Silence when the buffer is empty.
//
// It never advances: every call yields the same frame. Use Cursor for a
// source that walks the buffer.
func (s *Stereo) Next() Frame {
	if len(s.frames) == 0 {
		return Silence
	}
	return s.frames[0]
}

// IsExhausted reports true only for an empty buffer, since Next has nothing
// meaningful to return in that case.
func (s *Stereo) IsExhausted() bool {
	return len(s.frames) == 0
}
