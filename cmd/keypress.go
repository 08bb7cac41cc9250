package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// waitForKey blocks until one byte can be read from in. A terminal is put in
// raw mode so a single key press is enough.
func waitForKey(in io.Reader) error {
	if f, ok := in.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("keypress: %w", err)
			}
			defer func() { _ = term.Restore(fd, state) }()
		}
	}

	var b [1]byte
	if _, err := in.Read(b[:]); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("keypress: %w", err)
	}
	return nil
}
