package badge

import (
	"github.com/pkg/errors"
)

type renderer struct {
	contentType string
	render      func(*Data) ([]byte, error)
}

var renderers = map[string]renderer{
	"svg":  {"image/svg+xml;charset=utf-8", renderSVG},
	"png":  {"image/png", renderPNG},
	"gif":  {"image/gif", renderGIF},
	"jpg":  {"image/jpeg", renderJPG},
	"json": {"application/json;charset=utf-8", renderJSON},
}

// Render encodes d in the given format and returns the content type with the body.
func Render(format string, d *Data) (string, []byte, error) {
	r, ok := renderers[format]
	if !ok {
		return "", nil, errors.Errorf("unsupported badge format %q", format)
	}
	body, e := r.render(d)
	if e != nil {
		return "", nil, errors.Wrapf(e, "render %s badge", format)
	}
	return r.contentType, body, nil
}

func Supported(format string) bool {
	_, ok := renderers[format]
	return ok
}
