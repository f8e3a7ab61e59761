// SPDX-License-Identifier: EPL-2.0

// Package sigfile stores stereo buffers on disk, choosing the encoding from
// the file extension.
package sigfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/stereosig"
	"github.com/ik5/stereosig/audio"
	"github.com/ik5/stereosig/formats/wav"
	"github.com/ik5/stereosig/signal"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an extension no encoder or decoder handles.
var ErrUnknownFormat = errors.New("unknown signal file format")

// WAVBitDepth is the depth Save writes WAV files at.
const WAVBitDepth = 16

func ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Save writes s to path. JSON and YAML keep every float32 exactly; WAV
// quantizes to 16 bits and needs sampleRate.
func Save(path string, s *signal.Stereo, sampleRate int) error {
	var (
		data []byte
		err  error
	)

	switch ext(path) {
	case "json":
		data, err = json.MarshalIndent(s, "", "  ")
	case "yaml", "yml":
		data, err = yaml.Marshal(s)
	case "wav":
		return saveWAV(path, s, sampleRate)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func saveWAV(path string, s *signal.Stereo, sampleRate int) (err error) {
	if sampleRate <= 0 {
		return fmt.Errorf("writing %s: invalid sample rate %d", path, sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return wav.Encode(f, audio.NewStereoSource(s, sampleRate), WAVBitDepth)
}

// Load reads path back into a buffer. JSON and YAML files hold frames
// directly; any extension known to reg is decoded and downmixed, so a
// two channel WAV comes back with left plus right on both sides.
func Load(path string, reg *audio.Registry) (*signal.Stereo, error) {
	switch e := ext(path); e {
	case "json", "yaml", "yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		s := signal.New()
		if e == "json" {
			err = json.Unmarshal(data, s)
		} else {
			err = yaml.Unmarshal(data, s)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		return s, nil
	default:
		return loadAudio(path, e, reg)
	}
}

func loadAudio(path, format string, reg *audio.Registry) (*signal.Stereo, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if _, ok := reg.Get(format); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := reg.Decode(format, f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	return stereosig.Downmix(src)
}
