// SPDX-License-Identifier: EPL-2.0

package signal

// FromSource drains src into a new Stereo buffer.
//
// Each frame is normalized sample by sample with ToFloat32 and the channel
// values are summed, not averaged, into one scalar that is written to both
// output channels. A two channel frame of (1.0, 1.0) therefore becomes
// (2.0, 2.0). Callers that need unity gain must scale the result themselves.
//
// The frame returned by the Next call after which src reports exhaustion is
// dropped.
func FromSource[S Sample, F Channeler[S]](src Source[F]) *Stereo {
	out := New()

	for {
		frame := src.Next()
		if src.IsExhausted() {
			break
		}

		var mix float32
		for _, sample := range frame.Channels() {
			mix += ToFloat32(sample)
		}

		out.Push(Mono(mix))
	}

	return out
}
