package err

import (
	"encoding/json"
	"io"
)

// EncodePretty writes i as two-space indented json followed by a newline.
func EncodePretty(w io.Writer, i interface{}) Error {
	b, e := json.MarshalIndent(i, "", "  ")
	if e != nil {
		return Wrap(e, "encode json")
	}
	_, e = w.Write(append(b, '\n'))
	return Wrap(e, "write json")
}
