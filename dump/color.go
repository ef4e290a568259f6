package dump

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type ColorPair struct {
	Foreground color.Attribute
	Background color.Attribute
}

var colorPairs = [2]ColorPair{
	{Foreground: color.FgBlack, Background: color.BgWhite},
	{Foreground: color.FgWhite, Background: color.BgBlack},
}

// colorCycle alternates between the two entries of colorPairs
type colorCycle int

func (c *colorCycle) next() ColorPair {
	pair := colorPairs[*c]
	*c = 1 - *c
	return pair
}

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var colorModeNames = map[ColorMode]string{
	ColorAuto:   "auto",
	ColorAlways: "always",
	ColorNever:  "never",
}

func (m ColorMode) String() string {
	return colorModeNames[m]
}

func ParseColorMode(name string) (ColorMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ColorAuto, nil
	}
	for mode, modeName := range colorModeNames {
		if name == modeName {
			return mode, nil
		}
	}
	return ColorAuto, Fatalf("unknown color mode: '%s'", name)
}

// ColorSink is a writer that can also change the color of the text written
// through it.
type ColorSink interface {
	io.Writer
	SetColor(ColorPair) error
	ResetColor() error
	ColorEnabled() bool
}

// TerminalSink buffers output for w and emits ANSI color sequences when
// color is enabled.  Flush must be called when the output is complete.
type TerminalSink struct {
	writer  *bufio.Writer
	enabled bool
	colors  map[ColorPair]*color.Color
	reset   *color.Color
}

func NewTerminalSink(w io.Writer, mode ColorMode) *TerminalSink {
	enabled := false
	switch mode {
	case ColorAlways:
		enabled = true
	case ColorAuto:
		enabled = isTerminal(w)
	}
	reset := color.New(color.Reset)
	reset.EnableColor()
	return &TerminalSink{
		writer:  bufio.NewWriter(w),
		enabled: enabled,
		colors:  make(map[ColorPair]*color.Color),
		reset:   reset,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s *TerminalSink) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

func (s *TerminalSink) ColorEnabled() bool {
	return s.enabled
}

func (s *TerminalSink) SetColor(pair ColorPair) error {
	if !s.enabled {
		return nil
	}
	c, ok := s.colors[pair]
	if !ok {
		c = color.New(pair.Foreground, pair.Background)
		c.EnableColor()
		s.colors[pair] = c
	}
	c.SetWriter(s.writer)
	return nil
}

func (s *TerminalSink) ResetColor() error {
	if !s.enabled {
		return nil
	}
	s.reset.SetWriter(s.writer)
	return nil
}

func (s *TerminalSink) Flush() error {
	err := s.writer.Flush()
	if err != nil {
		return Fatal(err)
	}
	return nil
}
