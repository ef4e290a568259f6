package dump

import (
	"bufio"
	"errors"
	"io"
)

const WindowSize = 16
const GroupSize = 8

// Chunker reads a stream in fixed WindowSize windows.  The slice returned
// by Window is reused and is only valid until the next call to Advance.
type Chunker struct {
	reader *bufio.Reader
	buf    []byte
	window []byte
	done   bool
}

func NewChunker(r io.Reader) *Chunker {
	return &Chunker{
		reader: bufio.NewReader(r),
		buf:    make([]byte, WindowSize),
	}
}

// Advance consumes the current window and reads the next one.  It returns
// false once the stream is exhausted; every later call also returns false.
// Only io.EOF from the source ends the stream, any other error is returned.
func (c *Chunker) Advance() (bool, error) {
	if len(c.window) > 0 {
		_, err := c.reader.Discard(len(c.window))
		c.window = c.buf[:0]
		if err != nil {
			c.done = true
			return false, Fatal(err)
		}
	}
	if c.done {
		return false, nil
	}
	peeked, err := c.reader.Peek(WindowSize)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			c.done = true
			return false, Fatal(err)
		}
		c.done = true
	}
	if len(peeked) == 0 {
		return false, nil
	}
	c.window = append(c.buf[:0], peeked...)
	return true, nil
}

func (c *Chunker) Window() []byte {
	return c.window
}
