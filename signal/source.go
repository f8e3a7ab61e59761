// SPDX-License-Identifier: EPL-2.0

package signal

// Source is a stateful producer of frames of type F.
//
// Next advances the source and returns a frame. IsExhausted must be asked
// after Next: when it reports true, the frame just returned lies past the end
// of the stream and has to be discarded.
type Source[F any] interface {
	Next() F
	IsExhausted() bool
}

// Channeler is a frame that exposes its per-channel samples.
type Channeler[S Sample] interface {
	Channels() []S
}

// PCM is a frame with an arbitrary number of channels.
type PCM[S Sample] []S

func (p PCM[S]) Channels() []S { return p }
