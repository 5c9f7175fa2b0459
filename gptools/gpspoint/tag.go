package gpspoint

import (
	"strings"
)

// Tag is one key=value attribute of a line. HasValue is false for "key=",
// while `key=""` has a value that is the empty string.
type Tag struct {
	Key      string
	Value    string
	HasValue bool
}

// ParseTag splits a token into key and decoded value. It returns false for
// tokens that are not attributes: no '=', empty key, or a quoted value
// missing its closing quote.
func ParseTag(token string) (Tag, bool) {
	eq := indexUnescaped(token, '=')
	if eq <= 0 {
		return Tag{}, false
	}

	tag := Tag{Key: token[:eq]}
	raw := token[eq+1:]
	switch {
	case raw == "":
		return tag, true
	case raw[0] != '"':
		tag.Value = Unescape(raw)
	case len(raw) >= 2 && raw[1] == '"':
		// ""
	case len(raw) < 2 || raw[len(raw)-1] != '"':
		return Tag{}, false
	default:
		tag.Value = Unescape(raw[1 : len(raw)-1])
	}
	tag.HasValue = true
	return tag, true
}

// Unescape drops each backslash and keeps the byte following it. A trailing
// lone backslash is dropped.
func Unescape(raw string) string {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' {
			i++
			if i == len(raw) {
				break
			}
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", " ", "\r", " ")

// Escape makes text safe to write inside a quoted value. Line breaks become
// spaces since values cannot span lines.
func Escape(text string) string {
	return escaper.Replace(text)
}
