package err

import "io"

// Close closes c and logs a failure instead of returning it; for defers.
func Close(c io.Closer) {
	if c == nil {
		return
	}
	Wrap(c.Close(), "close").Warn()
}

// Drain discards what is left of r and closes it so the connection can be reused.
func Drain(r io.ReadCloser) {
	if r == nil {
		return
	}
	_, _ = io.Copy(io.Discard, r)
	Close(r)
}
