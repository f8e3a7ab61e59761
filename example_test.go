// SPDX-License-Identifier: EPL-2.0

package stereosig_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/stereosig"
	"github.com/ik5/stereosig/audio"
	"github.com/ik5/stereosig/formats/wav"
	"github.com/ik5/stereosig/signal"
)

// Example writes a two channel WAV file, decodes it through the registry and
// downmixes it.
func Example() {
	dir, err := os.MkdirTemp("", "stereosig-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "in.wav")
	out, err := os.Create(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	buffer := signal.FromGenerator(signal.Constant{0.5, 0.25}, 8)
	if err := wav.Encode(out, audio.NewStereoSource(buffer, 8000), 16); err != nil {
		fmt.Println(err)
		return
	}
	out.Close()

	in, err := os.Open(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer in.Close()

	src, err := stereosig.NewRegistry().Decode("wav", in)
	if err != nil {
		fmt.Println(err)
		return
	}

	mixed, err := stereosig.Downmix(src)
	if err != nil {
		fmt.Println(err)
		return
	}

	first, _ := mixed.Frame(0)
	fmt.Println(mixed.Len(), "frames, first", first)
	// Output:
	// 8 frames, first [0.75 0.75]
}
