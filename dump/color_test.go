package dump

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorCycle(t *testing.T) {
	var cycle colorCycle
	first := cycle.next()
	second := cycle.next()
	require.NotEqual(t, first, second)
	require.Equal(t, first, cycle.next())
	require.Equal(t, first.Foreground+10, second.Background)
	require.Equal(t, second.Foreground+10, first.Background)
}

func TestParseColorMode(t *testing.T) {
	for name, expected := range map[string]ColorMode{
		"":        ColorAuto,
		"auto":    ColorAuto,
		"always":  ColorAlways,
		"NEVER":   ColorNever,
		" never ": ColorNever,
	} {
		mode, err := ParseColorMode(name)
		require.Nil(t, err)
		require.Equal(t, expected, mode)
	}
	_, err := ParseColorMode("sometimes")
	require.NotNil(t, err)
	require.Equal(t, "always", ColorAlways.String())
}

func TestTerminalSinkAlways(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, ColorAlways)
	require.True(t, sink.ColorEnabled())
	require.Nil(t, sink.SetColor(colorPairs[0]))
	_, err := sink.Write([]byte("x"))
	require.Nil(t, err)
	require.Nil(t, sink.ResetColor())
	require.Zero(t, buf.Len())
	require.Nil(t, sink.Flush())
	require.Equal(t, "\x1b[30;47mx\x1b[0m", buf.String())
}

func TestTerminalSinkDisabled(t *testing.T) {
	for _, mode := range []ColorMode{ColorAuto, ColorNever} {
		var buf bytes.Buffer
		sink := NewTerminalSink(&buf, mode)
		require.False(t, sink.ColorEnabled())
		_, err := Dump(bytes.NewReader(sequence(20)), sink, Options{Mode: ModeBraille, Color: true})
		require.Nil(t, err)
		require.Nil(t, sink.Flush())
		require.NotContains(t, buf.String(), "\x1b[")
		require.Contains(t, buf.String(), "00000014\n")
	}
}

func TestTerminalSinkBraille(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, ColorAlways)
	_, err := Dump(bytes.NewReader([]byte{0xff}), sink, Options{Mode: ModeBraille, Color: sink.ColorEnabled()})
	require.Nil(t, err)
	require.Nil(t, sink.Flush())
	require.Contains(t, buf.String(), "00000000  \x1b[30;47m⣿\x1b[0m ")
	require.Contains(t, buf.String(), "|.|\n00000001\n")
}
