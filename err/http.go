package err

import (
	"context"
	"io"
	"net/http"
)

func Request(ctx context.Context, method, url string, body io.Reader) (*http.Request, Error) {
	r, e := http.NewRequestWithContext(ctx, method, url, body)
	return r, New(e)
}

func Send(c *http.Client, r *http.Request) (*http.Response, Error) {
	if c == nil {
		c = http.DefaultClient
	}
	rs, e := c.Do(r)
	return rs, New(e)
}

// Status reports a non-2xx response as an error.
func Status(rs *http.Response) Error {
	if rs.StatusCode < 200 || rs.StatusCode > 299 {
		return Errorf("unexpected status %d from %s", rs.StatusCode, rs.Request.URL.Redacted())
	}
	return Nil()
}
