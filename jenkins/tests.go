package jenkins

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/dags-/jenkbadge/badge"
	"github.com/dags-/jenkbadge/err"
	"github.com/dags-/jenkbadge/service"
)

// maxBodySize bounds what is read from an upstream that is named by the caller.
const maxBodySize = 1 << 20

var testsRoute = regexp.MustCompile(`^/jenkins(?:-ci)?/t/(https?)/([^/]+)/(.+)\.(svg|png|gif|jpg|json)$`)

// Tests renders the pass count of a job's last build, e.g. "123 / 125".
type Tests struct {
	client *Client
}

func NewTests(client *Client) *Tests {
	return &Tests{client: client}
}

func (t *Tests) Metadata() service.Metadata {
	return service.Metadata{
		Category: "build",
		Route: service.Route{
			Base:    "jenkins/t",
			Pattern: ":scheme(http|https)?/:host/:job*",
			Regexp:  testsRoute,
		},
	}
}

func (t *Tests) Examples() []service.Example {
	return []service.Example{
		{
			Title:   "Jenkins tests",
			Pattern: ":scheme/:host/:job",
			NamedParams: map[string]string{
				"scheme": "https",
				"host":   "jenkins.qa.ubuntu.com",
				"job":    "view/Precise/view/All%20Precise/job/precise-desktop-amd64_default",
			},
			StaticPreview: service.Preview{
				Label:   "build",
				Message: "passing",
				Color:   "brightgreen",
			},
		},
	}
}

func (t *Tests) Handle(ctx context.Context, rq *service.Request) *badge.Data {
	data := badge.MakeData("tests", rq.Overrides)
	endpoint := getEndpoint(rq.Param(0), rq.Param(1), rq.Param(2))

	res := t.fetch(ctx, endpoint)
	switch res.outcome {
	case outcomeInaccessible:
		data.Text[1] = "inaccessible"
	case outcomeInvalid:
		data.Text[1] = "invalid"
	case outcomeOK:
		s := res.summary
		data.Text[1] = fmt.Sprintf("%d / %d", s.Successful(), s.TotalCount)
		data.ColorScheme = s.Color()
	}
	return data
}

func (t *Tests) fetch(ctx context.Context, endpoint string) fetchResult {
	rs, e := t.client.Get(ctx, endpoint)
	if e.Present() {
		log.Debug().Str("url", endpoint).Err(e.Cause()).Msg("jenkins inaccessible")
		return fetchResult{outcome: outcomeInaccessible}
	}
	defer err.Close(rs.Body)

	body, er := io.ReadAll(io.LimitReader(rs.Body, maxBodySize+1))
	if er != nil {
		log.Debug().Str("url", endpoint).Err(er).Msg("jenkins response cut short")
		return fetchResult{outcome: outcomeInaccessible}
	}
	if len(body) > maxBodySize {
		log.Debug().Str("url", endpoint).Int("limit", maxBodySize).Msg("jenkins response too large")
		return fetchResult{outcome: outcomeInvalid}
	}

	res := parseTestSummary(body)
	if res.outcome == outcomeInvalid {
		log.Debug().Str("url", endpoint).Msg("jenkins returned an unexpected test summary")
	}
	return res
}
