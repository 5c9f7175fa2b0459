package gpspoint

import (
	"iter"
	"strings"
)

// Tokens splits one line (terminator already stripped) into whitespace
// separated tokens. Whitespace inside double quotes does not split, and a
// backslash makes the following byte literal. A token starting with '#'
// ends the line, so comment lines yield nothing.
func Tokens(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		i, n := 0, len(line)
		for {
			for i < n && isSpace(line[i]) {
				i++
			}
			if i >= n || line[i] == '#' {
				return
			}

			start := i
			inQuote, escaped := false, false
		L:
			for ; i < n; i++ {
				c := line[i]
				switch {
				case escaped:
					escaped = false
				case c == '\\':
					escaped = true
				case c == '"':
					inQuote = !inQuote
				case isSpace(c) && !inQuote:
					break L
				}
			}
			if !yield(line[start:i]) {
				return
			}
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// indexUnescaped returns the index of the first c not preceded by an
// escaping backslash, or -1
func indexUnescaped(s string, c byte) int {
	if strings.IndexByte(s, '\\') < 0 {
		return strings.IndexByte(s, c)
	}
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == c:
			return i
		}
	}
	return -1
}
