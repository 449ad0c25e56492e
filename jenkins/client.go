package jenkins

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dags-/jenkbadge/err"
)

const (
	suffix = "/lastBuild/api/json"
)

// Config holds the static credentials sent to every Jenkins server. It is
// read once at startup and never modified.
type Config struct {
	User    string
	Pass    string
	Timeout time.Duration
}

type Client struct {
	user string
	pass string
	http *http.Client
}

func NewClient(c *Config) *Client {
	return &Client{
		user: c.User,
		pass: c.Pass,
		http: &http.Client{Timeout: c.Timeout},
	}
}

// Get issues a single GET. Non-2xx responses are returned as errors with
// the body already released.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, err.Error) {
	rq, e := err.Request(ctx, http.MethodGet, url, nil)
	if e.Present() {
		return nil, e
	}

	rq.Header.Set("Accept", "application/json")
	if c.user != "" {
		rq.SetBasicAuth(c.user, c.pass)
	}

	rs, e := err.Send(c.http, rq)
	if e.Present() {
		return nil, e
	}

	if e := err.Status(rs); e.Present() {
		err.Drain(rs.Body)
		return nil, e
	}

	return rs, err.Nil()
}

// getEndpoint builds the lastBuild API url for job. A bare job name lives
// under /job/; a path containing "/" already spells out its folder, view
// and job segments and is appended to the host as is.
func getEndpoint(scheme, host, job string) string {
	path := "/job/" + job
	if strings.Contains(job, "/") {
		path = "/" + job
	}
	return scheme + "://" + host + path + suffix + "?tree=" + testsTree
}
