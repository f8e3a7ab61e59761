// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/ik5/stereosig/signal"
)

func encode(t *testing.T, values any) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, values); err != nil {
		t.Fatalf("binary.Write() error = %v", err)
	}
	return buf.Bytes()
}

func TestReader_Frames(t *testing.T) {
	t.Parallel()

	data := encode(t, []int16{100, -100, 200, -200, 300, -300})
	rd := NewReader[int16](bytes.NewReader(data), 2)

	for i, want := range [][2]int16{{100, -100}, {200, -200}, {300, -300}} {
		frame := rd.Next()
		if rd.IsExhausted() {
			t.Fatalf("exhausted after %d frames, want 3", i)
		}
		if frame[0] != want[0] || frame[1] != want[1] {
			t.Errorf("frame %d = %v, want %v", i, frame, want)
		}
	}

	frame := rd.Next()
	if !rd.IsExhausted() {
		t.Fatal("IsExhausted() = false after the last frame")
	}
	if frame[0] != 0 || frame[1] != 0 {
		t.Errorf("frame past the end = %v, want silence", frame)
	}
	if err := rd.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestReader_PartialFrameDiscarded(t *testing.T) {
	t.Parallel()

	data := encode(t, []int16{1, 2, 3})
	got := signal.FromSource[int16, signal.PCM[int16]](NewReader[int16](bytes.NewReader(data), 2))

	if got.Len() != 1 {
		t.Errorf("Len() = %d, want 1", got.Len())
	}
}

func TestReader_InvalidChannels(t *testing.T) {
	t.Parallel()

	rd := NewReader[int16](bytes.NewReader([]byte{1, 2}), 0)
	rd.Next()
	if !rd.IsExhausted() {
		t.Error("IsExhausted() = false for a zero channel reader")
	}
	if !errors.Is(rd.Err(), ErrInvalidChannels) {
		t.Errorf("Err() = %v, want ErrInvalidChannels", rd.Err())
	}
}

func TestReader_ReadError(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken pipe")
	r := io.MultiReader(bytes.NewReader(encode(t, []int16{1, 1})), iotest.ErrReader(errBroken))

	out := signal.FromSource[int16, signal.PCM[int16]](NewReader[int16](r, 1))
	if out.Len() != 2 {
		t.Errorf("Len() = %d, want 2 frames before the failure", out.Len())
	}

	rd := NewReader[int16](iotest.ErrReader(errBroken), 1)
	rd.Next()
	if !rd.IsExhausted() || !errors.Is(rd.Err(), errBroken) {
		t.Errorf("after failure: exhausted=%v err=%v; want true, %v", rd.IsExhausted(), rd.Err(), errBroken)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}

	if got, err := ParseFormat(" S16LE "); err != nil || got != S16LE {
		t.Errorf("ParseFormat(\" S16LE \") = %q, %v; want s16le", got, err)
	}

	if _, err := ParseFormat("mp3"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(\"mp3\") error = %v, want ErrUnknownFormat", err)
	}
}

func TestDownmix_EveryFormat(t *testing.T) {
	t.Parallel()

	// Each input holds one stereo frame whose channels normalize to 0.5 and
	// 0.25, so every format sums to 0.75.
	tests := []struct {
		format Format
		values any
	}{
		{S8, []int8{64, 32}},
		{U8, []uint8{192, 160}},
		{S16LE, []int16{16384, 8192}},
		{U16LE, []uint16{49152, 40960}},
		{S32LE, []int32{1 << 30, 1 << 29}},
		{U32LE, []uint32{3 << 30, 5 << 29}},
		{F32LE, []float32{0.5, 0.25}},
		{F64LE, []float64{0.5, 0.25}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			got, err := Downmix(bytes.NewReader(encode(t, tt.values)), tt.format, 2)
			if err != nil {
				t.Fatalf("Downmix() error = %v", err)
			}
			if got.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", got.Len())
			}
			frame, _ := got.Frame(0)
			if frame != (signal.Frame{0.75, 0.75}) {
				t.Errorf("frame = %v, want [0.75 0.75]", frame)
			}
		})
	}
}

func TestDownmix_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Downmix(bytes.NewReader(nil), Format("a-law"), 1); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Downmix(a-law) error = %v, want ErrUnknownFormat", err)
	}

	if _, err := Downmix(bytes.NewReader(nil), S16LE, 0); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("Downmix(0 channels) error = %v, want ErrInvalidChannels", err)
	}

	errBroken := errors.New("broken pipe")
	if _, err := Downmix(iotest.ErrReader(errBroken), F32LE, 1); !errors.Is(err, errBroken) {
		t.Errorf("Downmix(failing reader) error = %v, want %v", err, errBroken)
	}
}
