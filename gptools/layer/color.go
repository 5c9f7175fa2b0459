package layer

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a 24-bit RGB colour
type Color struct {
	R, G, B uint8
}

// ParseColor parses "#rgb", "#rrggbb", "#rrrgggbbb", "#rrrrggggbbbb" or a
// named colour such as "red" or "DarkOliveGreen".
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, false
	}
	if s[0] != '#' {
		c, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(s, " ", ""))]
		if !ok {
			return Color{}, false
		}
		return Color{R: c.R, G: c.G, B: c.B}, true
	}

	hex := s[1:]
	if len(hex) == 0 || len(hex)%3 != 0 || len(hex) > 12 {
		return Color{}, false
	}
	n := len(hex) / 3
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*n:(i+1)*n], 16, 16)
		if err != nil {
			return Color{}, false
		}
		channels[i] = scaleChannel(v, n)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, true
}

// scaleChannel keeps the most significant 8 bits of a 4..16 bit channel
func scaleChannel(v uint64, digits int) uint8 {
	switch digits {
	case 1:
		return uint8(v<<4 | v)
	case 2:
		return uint8(v)
	default:
		return uint8(v >> (uint(digits-2) * 4))
	}
}

// Hex returns the colour as "#rrggbb"
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
