// SPDX-License-Identifier: EPL-2.0

package audiotest

// Script is a frame source that replays a fixed list of frames and then
// reports exhaustion. It satisfies signal.Source[F].
//
// ExhaustAt overrides the end of the stream: when non-negative, the Next call
// with that zero-based index is reported as exhausted even if frames remain.
// This lets tests feed a real-looking candidate frame that must be dropped.
type Script[F any] struct {
	Frames    []F
	ExhaustAt int
	Fill      F

	calls     int
	exhausted bool
	// Trace records "next" and "exhausted" in call order.
	Trace []string
}

// NewScript returns a script that is exhausted right after its last frame.
func NewScript[F any](frames ...F) *Script[F] {
	return &Script[F]{Frames: frames, ExhaustAt: -1}
}

func (s *Script[F]) Next() F {
	s.Trace = append(s.Trace, "next")

	idx := s.calls
	s.calls++

	end := len(s.Frames)
	if s.ExhaustAt >= 0 {
		end = min(end, s.ExhaustAt)
	}
	s.exhausted = idx >= end

	if idx < len(s.Frames) {
		return s.Frames[idx]
	}
	return s.Fill
}

func (s *Script[F]) IsExhausted() bool {
	s.Trace = append(s.Trace, "exhausted")
	return s.exhausted
}

// Calls is the number of Next calls made so far.
func (s *Script[F]) Calls() int { return s.calls }
