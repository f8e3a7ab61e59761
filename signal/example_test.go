// SPDX-License-Identifier: EPL-2.0

package signal_test

import (
	"encoding/json"
	"fmt"

	"github.com/ik5/stereosig/internal/audiotest"
	"github.com/ik5/stereosig/signal"
)

func ExampleFromGenerator() {
	s := signal.FromGenerator(signal.GeneratorFunc(func(pos int) signal.Frame {
		return signal.Frame{float32(pos) / 4, float32(-pos) / 4}
	}), 3)

	for i := range s.Len() {
		f, _ := s.Frame(i)
		fmt.Println(f)
	}
	// Output:
	// [0 0]
	// [0.25 -0.25]
	// [0.5 -0.5]
}

func ExampleFromSource() {
	// Two stereo frames; the stream ends after the second Next call, so the
	// second frame is discarded.
	src := audiotest.NewScript(signal.PCM[float32]{1, 1}, signal.PCM[float32]{0.5, -0.5})
	src.ExhaustAt = 1

	s := signal.FromSource[float32, signal.PCM[float32]](src)

	fmt.Println(s.Len())
	fmt.Println(s.Frames())
	// Output:
	// 1
	// [[2 2]]
}

func ExampleStereo_Cursor() {
	s := signal.New()
	s.Push(signal.Frame{0.1, 0.2})
	s.Push(signal.Frame{0.3, 0.4})

	c := s.Cursor()
	for {
		f := c.Next()
		if c.IsExhausted() {
			break
		}
		fmt.Println(f)
	}
	// Output:
	// [0.1 0.2]
	// [0.3 0.4]
}

func ExampleStereo_MarshalJSON() {
	s := signal.New()
	s.Push(signal.Frame{0.5, -0.5})

	data, _ := json.Marshal(s)
	fmt.Println(string(data))
	// Output:
	// {"frames":[[0.5,-0.5]]}
}
