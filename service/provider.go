// Package service defines what a badge provider exposes and the registry
// that routes inbound badge paths to providers.
package service

import (
	"context"
	"regexp"

	"github.com/dags-/jenkbadge/badge"
)

type Provider interface {
	Metadata() Metadata
	Examples() []Example
	// Handle always returns a badge; upstream failures are reported in the
	// badge message rather than as an error.
	Handle(ctx context.Context, rq *Request) *badge.Data
}

type Metadata struct {
	Category string
	Route    Route
}

// Route describes where a provider is mounted. Base and Pattern are for
// documentation; Regexp is matched against the escaped request path and
// must capture the output format as its last group.
type Route struct {
	Base    string
	Pattern string
	Regexp  *regexp.Regexp
}

type Example struct {
	Title         string            `json:"title" yaml:"title"`
	Pattern       string            `json:"pattern" yaml:"pattern"`
	NamedParams   map[string]string `json:"namedParams" yaml:"namedParams"`
	StaticPreview Preview           `json:"staticPreview" yaml:"staticPreview"`
}

type Preview struct {
	Label   string `json:"label" yaml:"label"`
	Message string `json:"message" yaml:"message"`
	Color   string `json:"color" yaml:"color"`
}

// Request is one matched badge request.
type Request struct {
	Path      string
	Params    []string
	Format    string
	Overrides badge.Overrides
}

// Param returns the i-th captured group, or "" when absent.
func (r *Request) Param(i int) string {
	if i < 0 || i >= len(r.Params) {
		return ""
	}
	return r.Params[i]
}
