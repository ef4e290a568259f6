package dump

import (
	"bytes"
	"fmt"
	"io"
	"strings"

)

type Mode int

const (
	ModeHex Mode = iota
	ModeBraille
)

type Options struct {
	Mode  Mode
	Elide bool
	Color bool
}

// Formatter writes one dump line per window.  Close writes the trailing
// line holding the total byte count.
type Formatter struct {
	w         io.Writer
	sink      ColorSink
	options   Options
	blankCell string
	offset    uint64
	previous  []byte
	shown     bool
	eliding   bool
	cycle     colorCycle
	lines     int
	elided    int
	err       error
}

func NewFormatter(w io.Writer, options Options) *Formatter {
	f := Formatter{
		w:        w,
		options:  options,
		previous: make([]byte, 0, WindowSize),
	}
	switch options.Mode {
	case ModeBraille:
		f.blankCell = " "
		if options.Color {
			sink, ok := w.(ColorSink)
			if ok && sink.ColorEnabled() {
				f.sink = sink
			}
		}
	default:
		f.blankCell = "   "
	}
	return &f
}

// WriteWindow formats window, which must hold at most WindowSize bytes.
// The window is not retained.
func (f *Formatter) WriteWindow(window []byte) error {
	if f.err != nil {
		return f.err
	}
	if len(window) > WindowSize {
		return Fatalf("window length %d exceeds %d", len(window), WindowSize)
	}
	if f.options.Elide && f.shown && bytes.Equal(window, f.previous) {
		if !f.eliding {
			f.writeString("*\n")
		}
		if f.err != nil {
			return f.err
		}
		f.eliding = true
		f.elided++
	} else {
		f.writeLine(window)
		if f.err != nil {
			return f.err
		}
		f.eliding = false
		f.lines++
		if f.options.Elide {
			f.previous = append(f.previous[:0], window...)
			f.shown = true
		}
	}
	f.offset += uint64(len(window))
	return nil
}

func (f *Formatter) writeLine(window []byte) {
	f.printf("%08x  ", f.offset)
	groups := 0
	for start := 0; start < len(window); start += GroupSize {
		end := min(start+GroupSize, len(window))
		for _, b := range window[start:end] {
			f.writeCell(b)
		}
		if f.sink != nil {
			f.sink.ResetColor()
		}
		f.writeString(" ")
		groups++
	}
	if f.sink != nil {
		f.cycle.next()
	}

	f.writeString(strings.Repeat(f.blankCell, WindowSize-len(window)))
	f.writeString(strings.Repeat(" ", WindowSize/GroupSize-groups))

	panel := make([]byte, 0, WindowSize+3)
	panel = append(panel, '|')
	for _, b := range window {
		panel = append(panel, printable(b))
	}
	panel = append(panel, '|', '\n')
	f.write(panel)
}

func (f *Formatter) writeCell(b byte) {
	switch f.options.Mode {
	case ModeBraille:
		if f.sink != nil {
			f.sink.SetColor(f.cycle.next())
		}
		f.writeString(string(BrailleRune(b)))
	default:
		f.printf("%02x ", b)
	}
}

func printable(b byte) byte {
	if b > 0x1f && b < 0x7f {
		return b
	}
	return '.'
}

// Close writes the total byte count.  Nothing is written if an earlier
// write failed.
func (f *Formatter) Close() error {
	if f.err != nil {
		return f.err
	}
	f.printf("%08x\n", f.offset)
	return f.err
}

func (f *Formatter) Offset() uint64 {
	return f.offset
}

func (f *Formatter) Lines() int {
	return f.lines
}

func (f *Formatter) Elided() int {
	return f.elided
}

func (f *Formatter) write(p []byte) {
	if f.err != nil {
		return
	}
	_, err := f.w.Write(p)
	if err != nil {
		f.err = Fatal(err)
	}
}

func (f *Formatter) writeString(s string) {
	if f.err != nil || s == "" {
		return
	}
	_, err := io.WriteString(f.w, s)
	if err != nil {
		f.err = Fatal(err)
	}
}

func (f *Formatter) printf(format string, args ...any) {
	if f.err != nil {
		return
	}
	_, err := fmt.Fprintf(f.w, format, args...)
	if err != nil {
		f.err = Fatal(err)
	}
}
