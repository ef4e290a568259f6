package dump

import (
	"io"
)

type Summary struct {
	Bytes  uint64
	Lines  int
	Elided int
}

// Dump reads r to the end and writes the formatted dump to w.  On a read
// or write failure the dump stops and the total line is not written.
func Dump(r io.Reader, w io.Writer, options Options) (Summary, error) {
	chunker := NewChunker(r)
	formatter := NewFormatter(w, options)
	for {
		ok, err := chunker.Advance()
		if err != nil {
			return summarize(formatter), err
		}
		if !ok {
			break
		}
		err = formatter.WriteWindow(chunker.Window())
		if err != nil {
			return summarize(formatter), err
		}
	}
	err := formatter.Close()
	return summarize(formatter), err
}

func summarize(f *Formatter) Summary {
	return Summary{
		Bytes:  f.Offset(),
		Lines:  f.Lines(),
		Elided: f.Elided(),
	}
}
