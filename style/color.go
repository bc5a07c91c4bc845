package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":      {0, 0, 0, 0xff},
	"white":      {0xff, 0xff, 0xff, 0xff},
	"red":        {0xff, 0, 0, 0xff},
	"green":      {0, 0x80, 0, 0xff},
	"lime":       {0, 0xff, 0, 0xff},
	"blue":       {0, 0, 0xff, 0xff},
	"yellow":     {0xff, 0xff, 0, 0xff},
	"gray":       {0x80, 0x80, 0x80, 0xff},
	"grey":       {0x80, 0x80, 0x80, 0xff},
	"silver":     {0xc0, 0xc0, 0xc0, 0xff},
	"navy":       {0, 0, 0x80, 0xff},
	"teal":       {0, 0x80, 0x80, 0xff},
	"maroon":     {0x80, 0, 0, 0xff},
	"orange":     {0xff, 0xa5, 0, 0xff},
	"powderblue": {0xb0, 0xe0, 0xe6, 0xff},
}

// Color converts a property value to a color. Supported are named colors,
// "#rgb", "#rrggbb" and "transparent". "default" and the empty value
// yield nil, i.e. the host's default color.
func (p Property) Color() (color.Color, error) {
	s := strings.TrimSpace(strings.ToLower(string(p)))
	switch s {
	case "", "default":
		return nil, nil
	case "transparent":
		return color.Transparent, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
			}
		}
	}
	return nil, fmt.Errorf("not a color: %q", p)
}

// ColorString returns the "#rrggbb" notation of a color.
func ColorString(c color.Color) string {
	if c == nil {
		return "default"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
