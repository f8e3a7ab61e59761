// SPDX-License-Identifier: EPL-2.0

package signal

// Cursor reads a Stereo buffer front to back, one frame per Next call.
type Cursor struct {
	s         *Stereo
	pos       int
	exhausted bool
}

// Cursor returns a new cursor positioned at the first frame of s.
// Frames pushed to s later are still reached by the cursor.
func (s *Stereo) Cursor() *Cursor {
	return &Cursor{s: s}
}

// Next returns the frame at the cursor and advances. Past the end it returns
// Silence and marks the cursor exhausted.
func (c *Cursor) Next() Frame {
	f, ok := c.s.Frame(c.pos)
	c.exhausted = !ok
	if ok {
		c.pos++
	}
	return f
}

// IsExhausted reports whether the last Next call ran past the end.
func (c *Cursor) IsExhausted() bool { return c.exhausted }

// Position is the index of the frame the next call to Next will return.
func (c *Cursor) Position() int { return c.pos }

// Remaining is the number of frames left before exhaustion.
func (c *Cursor) Remaining() int { return c.s.Len() - c.pos }

// Reset rewinds the cursor to the first frame.
func (c *Cursor) Reset() {
	c.pos = 0
	c.exhausted = false
}
