package badge

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

var palette = map[string]string{
	"brightgreen": "#4c1",
	"green":       "#97ca00",
	"yellowgreen": "#a4a61d",
	"yellow":      "#dfb317",
	"orange":      "#fe7d37",
	"red":         "#e05d44",
	"blue":        "#007ec6",
	"grey":        "#555",
	"gray":        "#555",
	"lightgrey":   "#9f9f9f",
	"lightgray":   "#9f9f9f",
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// lookupColor resolves a palette name or a 3/6 digit hex value to "#rrggbb" form.
func lookupColor(c string) (string, bool) {
	c = strings.TrimSpace(c)
	if c == "" {
		return "", false
	}
	if hex, ok := palette[strings.ToLower(c)]; ok {
		return hex, true
	}
	if m := hexColor.FindStringSubmatch(c); m != nil {
		return "#" + strings.ToLower(m[1]), true
	}
	return "", false
}

// MessageColor is the hex colour of the right hand side. ColorB wins over
// ColorScheme; anything unknown falls back to lightgrey.
func (d *Data) MessageColor() string {
	if hex, ok := lookupColor(d.ColorB); ok {
		return hex
	}
	if hex, ok := lookupColor(d.ColorScheme); ok {
		return hex
	}
	return palette[defaultColor]
}

func (d *Data) LabelHex() string {
	if hex, ok := lookupColor(d.LabelColor); ok {
		return hex
	}
	return palette["grey"]
}

// colorName is what json output reports: the override if it resolves,
// otherwise the scheme name.
func (d *Data) colorName() string {
	if _, ok := lookupColor(d.ColorB); ok {
		return d.ColorB
	}
	if _, ok := lookupColor(d.ColorScheme); ok {
		return d.ColorScheme
	}
	return defaultColor
}

func toRGBA(hex string) color.RGBA {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	v, e := strconv.ParseUint(h, 16, 32)
	if e != nil || len(h) != 6 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
