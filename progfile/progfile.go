/*
File    : minipyth/progfile/progfile.go
*/

// Package progfile loads a Minipyth program from a source file on disk,
// adapted from the teacher's file package: where that package wraps a
// stateful OS file handle for a general-purpose scripting language, a
// Minipyth program is read once and handed to the lexer as a string, so
// this package is reduced to the one operation that concern still needs.
package progfile

import (
	"fmt"
	"os"
	"strings"
)

// Load reads the program source at path and trims every trailing
// newline/carriage-return character, such as the one an editor adds to an
// otherwise single-line golfed program. Any other whitespace (leading,
// interior, or trailing spaces and tabs) is left untouched — it is the
// lexer's job to reject it as an unrecognized character, not this package's
// job to paper over it.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("progfile: could not read %q: %w", path, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
