package jenkins

import (
	"bytes"
	"encoding/json"
	"net/url"
)

var testsTree = url.QueryEscape("actions[failCount,skipCount,totalCount]")

type outcome int

const (
	outcomeOK outcome = iota
	outcomeInaccessible
	outcomeInvalid
)

// fetchResult is the classified answer of one lastBuild query.
type fetchResult struct {
	outcome outcome
	summary *TestSummary
}

type TestSummary struct {
	FailCount  int `json:"failCount"`
	SkipCount  int `json:"skipCount"`
	TotalCount int `json:"totalCount"`
}

func (s *TestSummary) Successful() int {
	return s.TotalCount - (s.FailCount + s.SkipCount)
}

func (s *TestSummary) Color() string {
	successful := s.Successful()
	switch {
	case successful == s.TotalCount:
		return "brightgreen"
	case successful == 0:
		return "red"
	default:
		return "yellow"
	}
}

// parseTestSummary picks the first action carrying failCount out of a
// lastBuild body. Missing test actions are inaccessible, anything that is
// not the expected shape is invalid.
func parseTestSummary(body []byte) fetchResult {
	invalid := fetchResult{outcome: outcomeInvalid}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var root interface{}
	if e := dec.Decode(&root); e != nil {
		return invalid
	}
	obj, ok := root.(map[string]interface{})
	if !ok {
		return invalid
	}
	actions, ok := obj["actions"].([]interface{})
	if !ok {
		return invalid
	}

	// a null anywhere in actions is malformed, even after the test action
	for _, a := range actions {
		if a == nil {
			return invalid
		}
	}

	for _, a := range actions {
		action, ok := a.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := action["failCount"]; !ok {
			continue
		}

		var s TestSummary
		for key, dst := range map[string]*int{
			"failCount":  &s.FailCount,
			"skipCount":  &s.SkipCount,
			"totalCount": &s.TotalCount,
		} {
			n, ok := intField(action, key)
			if !ok {
				return invalid
			}
			*dst = n
		}

		// a zero total has no meaningful ratio
		if s.TotalCount == 0 {
			return invalid
		}
		return fetchResult{outcome: outcomeOK, summary: &s}
	}

	return fetchResult{outcome: outcomeInaccessible}
}

func intField(obj map[string]interface{}, key string) (int, bool) {
	num, ok := obj[key].(json.Number)
	if !ok {
		return 0, false
	}
	n, e := num.Int64()
	if e != nil {
		return 0, false
	}
	return int(n), true
}
