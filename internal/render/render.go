// Package render turns highlighted log lines into terminal output.
package render

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/pgtail/internal/cachemanager"
	"github.com/zjrosen/pgtail/internal/highlight"
	"github.com/zjrosen/pgtail/internal/log"
	"github.com/zjrosen/pgtail/internal/pubsub"
	"github.com/zjrosen/pgtail/internal/theme"
)

const (
	cacheTTL = cachemanager.DefaultExpiration
	ellipsis = "…"
)

// Renderer styles lines with the registry's current chain and a theme.
type Renderer struct {
	registry  *highlight.Registry
	theme     *theme.Theme
	maxWidth  int
	stripANSI bool
	cache     cachemanager.CacheManager[string, string]
	cacheSet  bool
	lines     *cachemanager.ReadThroughCache[string, string, string]
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMaxWidth truncates rendered lines to n cells. Zero disables truncation.
func WithMaxWidth(n int) Option {
	return func(r *Renderer) { r.maxWidth = max(n, 0) }
}

// WithStripANSI removes escape sequences already present in the input.
func WithStripANSI(strip bool) Option {
	return func(r *Renderer) { r.stripANSI = strip }
}

// WithCache caches rendered lines in c. Pass nil to disable caching.
func WithCache(c cachemanager.CacheManager[string, string]) Option {
	return func(r *Renderer) {
		r.cache = c
		r.cacheSet = true
	}
}

// New returns a renderer. Without WithCache an in-memory cache is used.
func New(registry *highlight.Registry, th *theme.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		registry:  registry,
		theme:     th,
		stripANSI: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if !r.cacheSet {
		r.cache = cachemanager.NewInMemoryCacheManager[string, string](
			"rendered-lines", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	}
	if r.theme == nil {
		r.theme = theme.Default()
	}
	r.lines = cachemanager.NewReadThroughCache(r.cache, r.renderLine, r.cache == nil)
	return r
}

// Render highlights and styles one line.
func (r *Renderer) Render(line string) string {
	key := strconv.FormatUint(r.registry.Generation(), 10) + "\x00" + line
	out, _ := r.lines.Get(context.Background(), key, line, cacheTTL)
	return out
}

// RenderSQL styles a bare SQL statement token by token.
func (r *Renderer) RenderSQL(sql string) string {
	return r.fit(r.paint(SQLSegments(highlight.HighlightSQL(sql))))
}

// Highlight returns the segments Render would style, without styling them.
func (r *Renderer) Highlight(line string) []Segment {
	text := r.prepare(line)
	return Segments(text, r.registry.Highlight(text))
}

// Flush drops every cached line.
func (r *Renderer) Flush() {
	if r.cache == nil {
		return
	}
	if err := r.cache.Flush(context.Background()); err != nil {
		log.ErrorErr(log.CatRender, "flush failed", err)
	}
}

// Watch flushes the cache whenever the registry publishes a change. Stale
// entries are never served since the generation is part of the key; flushing
// only reclaims memory. The returned channel closes when ctx is done.
func (r *Renderer) Watch(ctx context.Context) <-chan struct{} {
	broker := r.registry.Broker()
	if broker == nil || r.cache == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return pubsub.Watch(ctx, broker, func(ev pubsub.Event[highlight.RegistryEvent]) {
		log.Debug(log.CatRender, "registry changed",
			"action", ev.Payload.Action, "name", ev.Payload.Name, "generation", ev.Payload.Generation)
		r.Flush()
	})
}

func (r *Renderer) renderLine(_ context.Context, line string) (string, error) {
	return r.fit(r.paint(r.Highlight(line))), nil
}

func (r *Renderer) prepare(line string) string {
	line = strings.TrimRight(line, "\r\n")
	if r.stripANSI {
		line = ansi.Strip(line)
	}
	return line
}

func (r *Renderer) paint(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Style == "" {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(r.theme.Style(seg.Style).Render(seg.Text))
	}
	return b.String()
}

func (r *Renderer) fit(s string) string {
	if r.maxWidth == 0 || ansi.StringWidth(s) <= r.maxWidth {
		return s
	}
	return truncate.StringWithTail(s, uint(r.maxWidth), ellipsis)
}
