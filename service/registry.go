package service

import (
	"sort"
	"sync"

	"github.com/dags-/jenkbadge/badge"
)

type Registry struct {
	lock      *sync.RWMutex
	providers []Provider
	bases     map[string]bool
}

// Listing groups a provider's examples for documentation output.
type Listing struct {
	Category string    `json:"category" yaml:"category"`
	Base     string    `json:"base" yaml:"base"`
	Pattern  string    `json:"pattern" yaml:"pattern"`
	Examples []Example `json:"examples" yaml:"examples"`
}

func NewRegistry() *Registry {
	return &Registry{
		lock:  &sync.RWMutex{},
		bases: map[string]bool{},
	}
}

// Register adds p. A nil provider, a missing route regexp or a duplicate
// route base is a programming error and panics.
func (r *Registry) Register(p Provider) {
	if p == nil {
		panic("service: Register provider is nil")
	}
	meta := p.Metadata()
	if meta.Route.Regexp == nil {
		panic("service: provider " + meta.Route.Base + " has no route regexp")
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if r.bases[meta.Route.Base] {
		panic("service: Register called twice for route " + meta.Route.Base)
	}
	r.bases[meta.Route.Base] = true
	r.providers = append(r.providers, p)
}

// Match finds the first provider whose route matches path.
func (r *Registry) Match(path string) (Provider, *Request, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for _, p := range r.providers {
		m := p.Metadata().Route.Regexp.FindStringSubmatch(path)
		if len(m) < 2 {
			continue
		}
		format := m[len(m)-1]
		if !badge.Supported(format) {
			continue
		}
		return p, &Request{
			Path:   path,
			Params: m[1 : len(m)-1],
			Format: format,
		}, true
	}
	return nil, nil, false
}

func (r *Registry) Examples() []Listing {
	r.lock.RLock()
	listings := make([]Listing, 0, len(r.providers))
	for _, p := range r.providers {
		meta := p.Metadata()
		listings = append(listings, Listing{
			Category: meta.Category,
			Base:     meta.Route.Base,
			Pattern:  meta.Route.Pattern,
			Examples: p.Examples(),
		})
	}
	r.lock.RUnlock()

	sort.Slice(listings, func(i, j int) bool {
		l0 := listings[i]
		l1 := listings[j]
		if l0.Category != l1.Category {
			return l0.Category < l1.Category
		}
		return l0.Base < l1.Base
	})
	return listings
}
