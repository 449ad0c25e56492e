package badge

import (
	"bytes"
	"html/template"
	"unicode/utf8"
)

const svg = `<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="20">
<linearGradient id="b" x2="0" y2="100%">
  <stop offset="0" stop-color="#bbb" stop-opacity=".1"/>
  <stop offset="1" stop-opacity=".1"/>
</linearGradient>
<mask id="a">
  <rect width="{{.Width}}" height="20" rx="3" fill="#fff"/>
</mask>
<g mask="url(#a)">
  <rect width="{{.LabelWidth}}" height="20" fill="{{.LabelColor}}"/>
  <rect x="{{.LabelWidth}}" width="{{.MessageWidth}}" height="20" fill="{{.Color}}"/>
  <rect width="{{.Width}}" height="20" fill="url(#b)"/>
</g>
<g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">
  <text x="{{.LabelX}}" y="15" fill="#010101" fill-opacity=".3">{{.Label}}</text>
  <text x="{{.LabelX}}" y="14">{{.Label}}</text>
  <text x="{{.MessageX}}" y="15" fill="#010101" fill-opacity=".3">{{.Message}}</text>
  <text x="{{.MessageX}}" y="14">{{.Message}}</text>
</g>
</svg>`

var svgTemplate = template.Must(template.New("svg").Parse(svg))

// Character widths are estimated at 6px, which is close enough for Verdana 11px.
func renderSVG(d *Data) ([]byte, error) {
	p := struct {
		Width, LabelWidth, MessageWidth int
		LabelX, MessageX                float64
		Label, Message                  string
		LabelColor, Color               string
	}{
		Label:        d.Label(),
		Message:      d.Message(),
		LabelColor:   d.LabelHex(),
		Color:        d.MessageColor(),
		LabelWidth:   textWidth(d.Label(), 6),
		MessageWidth: textWidth(d.Message(), 6),
	}
	p.Width = p.LabelWidth + p.MessageWidth
	p.LabelX = float64(p.LabelWidth) / 2
	p.MessageX = float64(p.LabelWidth) + float64(p.MessageWidth)/2

	var buf bytes.Buffer
	if e := svgTemplate.Execute(&buf, p); e != nil {
		return nil, e
	}
	return buf.Bytes(), nil
}

func textWidth(s string, perChar int) int {
	return 10 + perChar*utf8.RuneCountInString(s)
}
