// internal/cmdutil/cmdutil.go
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Warnf writes a prefixed diagnostic line unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Noticef writes a progress line unless quiet is set.
func Noticef(dst io.Writer, quiet bool, format string, a ...any) error {
	if quiet {
		return nil
	}
	_, err := fmt.Fprintf(dst, format+"\n", a...)
	return err
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
