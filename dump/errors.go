package dump

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"syscall"
)

func callerName() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	name := runtime.FuncForPC(pc).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Fatal wraps err with the name of the calling function
func Fatal(err error) error {
	return fmt.Errorf("%s: %w", callerName(), err)
}

func Fatalf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", callerName(), fmt.Errorf(format, args...))
}

// IsBrokenPipe reports whether err was caused by the reader of our output
// going away, as happens with `hexdump FILE | head`.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
