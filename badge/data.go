// Package badge holds the badge record handed between providers and the
// renderer, and encodes it as svg, png, gif, jpg or json.
package badge

import (
	"net/url"
	"strings"
)

const (
	defaultMessage = "n/a"
	defaultColor   = "lightgrey"
)

// Data is the label/message pair plus colours of one badge.
type Data struct {
	Text        [2]string `json:"text"`
	ColorScheme string    `json:"colorscheme"`
	ColorB      string    `json:"colorB,omitempty"`
	LabelColor  string    `json:"labelColor,omitempty"`
}

// Overrides are caller supplied values that replace a provider's defaults.
type Overrides struct {
	Label      string
	Color      string
	LabelColor string
}

// MakeData returns a fresh record labelled defaultLabel with o applied.
func MakeData(defaultLabel string, o Overrides) *Data {
	label := defaultLabel
	if o.Label != "" {
		label = o.Label
	}
	return &Data{
		Text:        [2]string{label, defaultMessage},
		ColorScheme: defaultColor,
		ColorB:      o.Color,
		LabelColor:  o.LabelColor,
	}
}

// OverridesFromQuery reads label, color (or colorB) and labelColor.
func OverridesFromQuery(q url.Values) Overrides {
	color := q.Get("color")
	if color == "" {
		color = q.Get("colorB")
	}
	return Overrides{
		Label:      strings.TrimSpace(q.Get("label")),
		Color:      strings.TrimSpace(color),
		LabelColor: strings.TrimSpace(q.Get("labelColor")),
	}
}

func (d *Data) Label() string {
	return d.Text[0]
}

func (d *Data) Message() string {
	return d.Text[1]
}
