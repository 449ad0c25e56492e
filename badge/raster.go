package badge

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	rasterHeight = 20
	rasterBase   = 14
)

func drawBadge(d *Data) *image.RGBA {
	face := basicfont.Face7x13
	labelWidth := textWidth(d.Label(), face.Advance)
	messageWidth := textWidth(d.Message(), face.Advance)

	img := image.NewRGBA(image.Rect(0, 0, labelWidth+messageWidth, rasterHeight))
	draw.Draw(img, image.Rect(0, 0, labelWidth, rasterHeight), image.NewUniform(toRGBA(d.LabelHex())), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(labelWidth, 0, labelWidth+messageWidth, rasterHeight), image.NewUniform(toRGBA(d.MessageColor())), image.Point{}, draw.Src)

	dr := &font.Drawer{Dst: img, Src: image.White, Face: face}
	dr.Dot = fixed.P(5, rasterBase)
	dr.DrawString(d.Label())
	dr.Dot = fixed.P(labelWidth+5, rasterBase)
	dr.DrawString(d.Message())
	return img
}

func renderPNG(d *Data) ([]byte, error) {
	var buf bytes.Buffer
	if e := png.Encode(&buf, drawBadge(d)); e != nil {
		return nil, e
	}
	return buf.Bytes(), nil
}

func renderGIF(d *Data) ([]byte, error) {
	var buf bytes.Buffer
	if e := gif.Encode(&buf, drawBadge(d), &gif.Options{NumColors: 256}); e != nil {
		return nil, e
	}
	return buf.Bytes(), nil
}

func renderJPG(d *Data) ([]byte, error) {
	var buf bytes.Buffer
	if e := jpeg.Encode(&buf, drawBadge(d), &jpeg.Options{Quality: 90}); e != nil {
		return nil, e
	}
	return buf.Bytes(), nil
}
