package utils

import "os"

// IsTerminal reports whether f is attached to a terminal. Used to decide
// when to prompt for stdin input and when to emit ANSI colors.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
