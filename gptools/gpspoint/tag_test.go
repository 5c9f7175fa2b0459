package gpspoint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gpspoint-tools/gptools/gpspoint"
)

func TestParseTag(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input string
		want  gpspoint.Tag
		ok    bool
	}{
		"quoted":           {input: `name="Mont Blanc"`, want: gpspoint.Tag{Key: "name", Value: "Mont Blanc", HasValue: true}, ok: true},
		"unquoted":         {input: `latitude=48.5`, want: gpspoint.Tag{Key: "latitude", Value: "48.5", HasValue: true}, ok: true},
		"empty_quoted":     {input: `comment=""`, want: gpspoint.Tag{Key: "comment", HasValue: true}, ok: true},
		"absent":           {input: `comment=`, want: gpspoint.Tag{Key: "comment"}, ok: true},
		"escaped_quote":    {input: `name="say \"hi\""`, want: gpspoint.Tag{Key: "name", Value: `say "hi"`, HasValue: true}, ok: true},
		"escaped_slash":    {input: `name="a\\b"`, want: gpspoint.Tag{Key: "name", Value: `a\b`, HasValue: true}, ok: true},
		"unquoted_escape":  {input: `name=a\ b`, want: gpspoint.Tag{Key: "name", Value: "a b", HasValue: true}, ok: true},
		"equals_in_value":  {input: `comment="a=b"`, want: gpspoint.Tag{Key: "comment", Value: "a=b", HasValue: true}, ok: true},
		"color_hash":       {input: `color=#00ff00`, want: gpspoint.Tag{Key: "color", Value: "#00ff00", HasValue: true}, ok: true},
		"dangling_slash":   {input: `name=abc\`, want: gpspoint.Tag{Key: "name", Value: "abc", HasValue: true}, ok: true},
		"no_equals":        {input: `waypoint`, ok: false},
		"empty_key":        {input: `="x"`, ok: false},
		"unterminated":     {input: `name="abc`, ok: false},
		"lone_quote":       {input: `comment="`, ok: false},
		"escaped_equals":   {input: `a\=b=c`, want: gpspoint.Tag{Key: `a\=b`, Value: "c", HasValue: true}, ok: true},
		"quoted_with_tail": {input: `name=""tail`, want: gpspoint.Tag{Key: "name", HasValue: true}, ok: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tag, ok := gpspoint.ParseTag(tc.input)
			require.Equal(tc.ok, ok)
			if tc.ok {
				require.Equal(tc.want, tag)
			}
		})
	}
}

// `key=` and `key=""` must stay distinguishable
func TestAbsentVersusEmptyValue(t *testing.T) {
	require := require.New(t)

	absent, ok := gpspoint.ParseTag("name=")
	require.True(ok)
	require.False(absent.HasValue)

	empty, ok := gpspoint.ParseTag(`name=""`)
	require.True(ok)
	require.True(empty.HasValue)
	require.Equal("", empty.Value)
}

func TestEscapeUnescape(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input   string
		escaped string
		want    string
	}{
		"plain":     {input: "hello world", escaped: "hello world", want: "hello world"},
		"quotes":    {input: `say "hi"`, escaped: `say \"hi\"`, want: `say "hi"`},
		"backslash": {input: `C:\photos\a.jpg`, escaped: `C:\\photos\\a.jpg`, want: `C:\photos\a.jpg`},
		"newlines":  {input: "line1\nline2\r\nline3", escaped: "line1 line2  line3", want: "line1 line2  line3"},
		"trailing":  {input: `ends with \`, escaped: `ends with \\`, want: `ends with \`},
		"mixed":     {input: "\\\"\n\"\\", escaped: `\\\" \"\\`, want: "\\\" \"\\"},
		"utf8":      {input: "Café \"Zürich\"", escaped: `Café \"Zürich\"`, want: `Café "Zürich"`},
		"empty":     {input: "", escaped: "", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := gpspoint.Escape(tc.input)
			require.Equal(tc.escaped, e)
			require.Equal(tc.want, gpspoint.Unescape(e))
		})
	}
}

// escaped text survives the tokenizer and tag parser unchanged
func TestEscapeThroughTokenizer(t *testing.T) {
	require := require.New(t)

	inputs := []string{
		`plain`,
		`with "quotes" inside`,
		`back\slash and \"both\"`,
		`trailing backslash\`,
		"multi\nline\rtext",
		`  spaces  `,
		`=equals= "and" #hash`,
	}

	for _, in := range inputs {
		line := `name="` + gpspoint.Escape(in) + `" x=1`
		var tags []gpspoint.Tag
		for tok := range gpspoint.Tokens(line) {
			tag, ok := gpspoint.ParseTag(tok)
			require.True(ok, tok)
			tags = append(tags, tag)
		}
		require.Len(tags, 2, line)
		want := strings.NewReplacer("\n", " ", "\r", " ").Replace(in)
		require.Equal(want, tags[0].Value)
		require.Equal("1", tags[1].Value)
	}
}
