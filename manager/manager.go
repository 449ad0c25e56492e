package manager

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dags-/jenkbadge/badge"
	"github.com/dags-/jenkbadge/err"
	"github.com/dags-/jenkbadge/service"
)

// Manager dispatches badge paths to providers and caches what they return.
type Manager struct {
	registry *service.Registry
	store    Store
	ttl      time.Duration
}

func New(registry *service.Registry, store Store, ttl time.Duration) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Manager{
		registry: registry,
		store:    store,
		ttl:      ttl,
	}
}

func (m *Manager) ServeBadge(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusMethodNotAllowed)
		return
	}

	p, rq, ok := m.registry.Match(c.Request.URL.EscapedPath())
	if !ok {
		c.String(http.StatusNotFound, "badge not found")
		return
	}
	rq.Overrides = badge.OverridesFromQuery(c.Request.URL.Query())

	ctx := c.Request.Context()
	key := c.Request.URL.RequestURI()

	data := m.lookup(ctx, key)
	if data == nil {
		data = p.Handle(ctx, rq)
		m.save(ctx, key, data)
	}

	contentType, body, e := badge.Render(rq.Format, data)
	if e != nil {
		err.New(e).Warn()
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Cache-Control", fmt.Sprintf("max-age=%d", int(m.ttl.Seconds())))
	c.Data(http.StatusOK, contentType, body)
}

func (m *Manager) ServeExamples(c *gin.Context) {
	c.JSON(http.StatusOK, m.registry.Examples())
}

func (m *Manager) lookup(ctx context.Context, key string) *badge.Data {
	if m.ttl <= 0 {
		return nil
	}
	data, ok, e := m.store.Get(ctx, key)
	if e != nil {
		err.Wrap(e, "cache lookup").Warn()
		return nil
	}
	if !ok {
		return nil
	}
	log.Debug().Str("key", key).Msg("cache hit")
	return data
}

func (m *Manager) save(ctx context.Context, key string, data *badge.Data) {
	// a cancelled request leaves an "inaccessible" badge that says nothing about upstream
	if m.ttl <= 0 || ctx.Err() != nil {
		return
	}
	if e := m.store.Set(ctx, key, data, m.ttl); e != nil {
		err.Wrap(e, "cache store").Warn()
	}
}
