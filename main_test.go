package main

import "testing"

func TestNewRegistryMountsJenkinsTests(t *testing.T) {
	r := newRegistry(&Config{})

	p, rq, ok := r.Match("/jenkins/t/https/ci.example.org/folder/job/app.svg")
	if !ok {
		t.Fatal("jenkins tests route not registered")
	}
	if p.Metadata().Category != "build" || rq.Param(2) != "folder/job/app" {
		t.Fatalf("unexpected match: %+v %+v", p.Metadata(), rq)
	}

	listings := r.Examples()
	if len(listings) != 1 || listings[0].Base != "jenkins/t" || len(listings[0].Examples) != 1 {
		t.Fatalf("unexpected examples: %+v", listings)
	}
	if listings[0].Examples[0].StaticPreview.Color != "brightgreen" {
		t.Fatalf("unexpected preview: %+v", listings[0].Examples[0].StaticPreview)
	}
}
