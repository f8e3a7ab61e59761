// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMalformedFrame is returned when a persisted frame does not hold
	// exactly two samples.
	ErrMalformedFrame = errors.New("frame must hold exactly 2 samples")

	// ErrNotEmpty is returned when decoding into a buffer that already holds
	// frames. Stored frames are never replaced.
	ErrNotEmpty = errors.New("cannot decode into a non-empty stereo signal")
)

// document is the persisted form of a Stereo buffer: an ordered list of
// [left, right] pairs. float32 values are written with their shortest exact
// representation, so decoding reproduces them bit for bit.
type document struct {
	Frames []Frame `json:"frames" yaml:"frames,flow"`
}

// rawDocument is the decoding side of document. Frames are read as plain
// lists so a wrong arity is reported instead of padded or truncated.
type rawDocument struct {
	Frames [][]float32 `json:"frames" yaml:"frames"`
}

func (s *Stereo) document() document {
	if s.frames == nil {
		return document{Frames: []Frame{}}
	}
	return document{Frames: s.frames}
}

// load fills the empty buffer s from doc.
func (s *Stereo) load(doc rawDocument) error {
	if len(s.frames) > 0 {
		return ErrNotEmpty
	}

	frames := make([]Frame, 0, len(doc.Frames))
	for i, f := range doc.Frames {
		if len(f) != 2 {
			return fmt.Errorf("%w: frame %d has %d", ErrMalformedFrame, i, len(f))
		}
		frames = append(frames, Frame{f[0], f[1]})
	}

	s.frames = frames
	return nil
}

// MarshalJSON writes s as {"frames": [[l, r], ...]}.
func (s *Stereo) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(s.document())
	if err != nil {
		return nil, fmt.Errorf("encoding stereo signal: %w", err)
	}
	return b, nil
}

// UnmarshalJSON decodes into an empty buffer; see ErrNotEmpty.
func (s *Stereo) UnmarshalJSON(data []byte) error {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding stereo signal: %w", err)
	}

	if err := s.load(doc); err != nil {
		return fmt.Errorf("decoding stereo signal: %w", err)
	}
	return nil
}

// MarshalYAML writes s as a frames mapping with flow-style pairs.
func (s *Stereo) MarshalYAML() (any, error) {
	return s.document(), nil
}

// UnmarshalYAML decodes into an empty buffer; see ErrNotEmpty.
func (s *Stereo) UnmarshalYAML(value *yaml.Node) error {
	var doc rawDocument
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("decoding stereo signal: %w", err)
	}

	if err := s.load(doc); err != nil {
		return fmt.Errorf("decoding stereo signal: %w", err)
	}
	return nil
}
