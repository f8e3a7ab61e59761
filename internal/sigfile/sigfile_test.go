// SPDX-License-Identifier: EPL-2.0

package sigfile

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/stereosig"
	"github.com/ik5/stereosig/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *signal.Stereo {
	return signal.FromGenerator(signal.Sine{Frequency: 440, SampleRate: 8000, Amplitude: 0.4, Phase: 0.3}, 257)
}

func TestSaveLoad_Exact(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"s.json", "s.yaml", "s.yml", "S.JSON"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			in := sample()

			require.NoError(t, Save(path, in, 8000))
			out, err := Load(path, nil)
			require.NoError(t, err)

			assert.Equal(t, in.Frames(), out.Frames())
		})
	}
}

func TestSaveLoad_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Save(path, signal.New(), 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"frames":[]}`, string(data))

	out, err := Load(path, nil)
	require.NoError(t, err)
	assert.Zero(t, out.Len())
}

func TestSaveLoad_WAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "s.wav")
	in := signal.FromGenerator(signal.Constant{0.25, -0.5}, 100)

	require.NoError(t, Save(path, in, 22050))

	out, err := Load(path, stereosig.NewRegistry())
	require.NoError(t, err)
	require.Equal(t, 100, out.Len())

	for _, f := range out.Frames() {
		assert.InDelta(t, -0.25, f.Left(), 1.0/32768)
		assert.Equal(t, f.Left(), f.Right())
	}
}

func TestSave_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := Save(filepath.Join(dir, "s.flac"), sample(), 8000)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	err = Save(filepath.Join(dir, "s.wav"), sample(), 0)
	assert.Error(t, err)

	err = Save(filepath.Join(dir, "missing", "s.json"), sample(), 8000)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := signal.New()
	bad.Push(signal.Frame{float32(math.Inf(1)), 0})
	path := filepath.Join(dir, "inf.json")
	err = Save(path, bad, 8000)
	assert.ErrorContains(t, err, "encoding "+path)
	assert.NoFileExists(t, path)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "nothing.json"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("frames: nope\n"), 0o644))
	_, err = Load(bad, nil)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "s.wav"), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "s.flac"), stereosig.NewRegistry())
	assert.ErrorIs(t, err, ErrUnknownFormat)

	garbage := filepath.Join(dir, "garbage.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not RIFF data"), 0o644))
	_, err = Load(garbage, stereosig.NewRegistry())
	assert.Error(t, err)
}
