package dump

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func sequence(length int) []byte {
	data := make([]byte, length)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func collectWindows(t *testing.T, r io.Reader) [][]byte {
	c := NewChunker(r)
	require.Empty(t, c.Window())
	windows := [][]byte{}
	for {
		ok, err := c.Advance()
		require.Nil(t, err)
		if !ok {
			break
		}
		window := c.Window()
		require.NotEmpty(t, window)
		windows = append(windows, append([]byte{}, window...))
	}
	require.Empty(t, c.Window())
	ok, err := c.Advance()
	require.Nil(t, err)
	require.False(t, ok)
	return windows
}

func TestChunkerEmpty(t *testing.T) {
	windows := collectWindows(t, bytes.NewReader(nil))
	require.Empty(t, windows)
}

func TestChunkerWindows(t *testing.T) {
	data := sequence(40)
	windows := collectWindows(t, bytes.NewReader(data))
	require.Len(t, windows, 3)
	require.Equal(t, data[0:16], windows[0])
	require.Equal(t, data[16:32], windows[1])
	require.Equal(t, data[32:40], windows[2])
}

func TestChunkerExactMultiple(t *testing.T) {
	data := sequence(48)
	windows := collectWindows(t, bytes.NewReader(data))
	require.Len(t, windows, 3)
	require.Equal(t, data[32:48], windows[2])
}

func TestChunkerSlowReader(t *testing.T) {
	data := sequence(35)
	windows := collectWindows(t, iotest.OneByteReader(bytes.NewReader(data)))
	require.Len(t, windows, 3)
	require.Len(t, windows[0], WindowSize)
	require.Len(t, windows[1], WindowSize)
	require.Equal(t, data[32:], windows[2])
}

func TestChunkerReusesBuffer(t *testing.T) {
	c := NewChunker(bytes.NewReader(sequence(32)))
	ok, err := c.Advance()
	require.Nil(t, err)
	require.True(t, ok)
	first := c.Window()
	ok, err = c.Advance()
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, byte(16), first[0])
}

func TestChunkerReadError(t *testing.T) {
	errBoom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader(sequence(20)), iotest.ErrReader(errBoom))
	c := NewChunker(r)
	ok, err := c.Advance()
	require.Nil(t, err)
	require.True(t, ok)
	ok, err = c.Advance()
	require.False(t, ok)
	require.NotNil(t, err)
	require.True(t, errors.Is(err, errBoom))
	ok, err = c.Advance()
	require.False(t, ok)
	require.Nil(t, err)
}

func TestChunkerUnexpectedEOFAtBoundary(t *testing.T) {
	r := io.MultiReader(bytes.NewReader(sequence(16)), iotest.ErrReader(io.ErrUnexpectedEOF))
	c := NewChunker(r)
	ok, err := c.Advance()
	require.Nil(t, err)
	require.True(t, ok)
	require.Len(t, c.Window(), WindowSize)
	ok, err = c.Advance()
	require.False(t, ok)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.Empty(t, c.Window())
}

func TestChunkerUnexpectedEOFMidWindow(t *testing.T) {
	r := io.MultiReader(bytes.NewReader(sequence(5)), iotest.ErrReader(io.ErrUnexpectedEOF))
	c := NewChunker(r)
	ok, err := c.Advance()
	require.False(t, ok)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.Empty(t, c.Window())
	ok, err = c.Advance()
	require.False(t, ok)
	require.Nil(t, err)
}

func TestChunkerNeverEmptyWindow(t *testing.T) {
	for length := 0; length <= 3*WindowSize; length++ {
		c := NewChunker(iotest.HalfReader(bytes.NewReader(sequence(length))))
		total := 0
		for {
			ok, err := c.Advance()
			require.Nil(t, err)
			if !ok {
				break
			}
			require.NotEmpty(t, c.Window())
			total += len(c.Window())
		}
		require.Equal(t, length, total)
	}
}
