// Package app wires configuration, the highlighter registry, the theme and
// the renderer together. Commands share one App per process.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/zjrosen/pgtail/internal/config"
	"github.com/zjrosen/pgtail/internal/highlight"
	"github.com/zjrosen/pgtail/internal/log"
	"github.com/zjrosen/pgtail/internal/pubsub"
	"github.com/zjrosen/pgtail/internal/render"
	"github.com/zjrosen/pgtail/internal/tail"
	"github.com/zjrosen/pgtail/internal/theme"
)

// App is the composition root.
type App struct {
	cfg        config.Config
	configPath string
	fs         afero.Fs

	broker   *pubsub.Broker[highlight.RegistryEvent]
	registry *highlight.Registry
	theme    *theme.Theme
	renderer *render.Renderer

	watchCancel context.CancelFunc
	watchDone   <-chan struct{}
}

// Option configures an App.
type Option func(*App)

// WithFs replaces the filesystem used to persist settings.
func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.fs = fs }
}

// WithConfigPath sets the file mutating commands write back to.
func WithConfigPath(path string) Option {
	return func(a *App) { a.configPath = path }
}

// New validates cfg and builds the registry, theme and renderer from it.
func New(cfg config.Config, opts ...Option) (*App, error) {
	a := &App{cfg: cfg, fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(a)
	}

	th, err := theme.New(cfg.Theme.Resolve())
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	a.broker = pubsub.NewBroker[highlight.RegistryEvent]()
	a.registry = highlight.NewRegistry(highlight.WithBroker(a.broker))
	if err := a.registry.Import(cfg.Highlighting); err != nil {
		a.broker.Close()
		return nil, fmt.Errorf("highlighting: %w", err)
	}

	a.theme = th
	a.renderer = render.New(a.registry, th,
		render.WithMaxWidth(cfg.Display.MaxWidth),
		render.WithStripANSI(cfg.Display.StripANSI),
	)

	ctx, cancel := context.WithCancel(context.Background())
	a.watchCancel = cancel
	a.watchDone = a.renderer.Watch(ctx)

	log.Debug(log.CatCLI, "app ready",
		"theme", th.Name(), "highlighters", len(a.registry.Names()), "config", a.configPath)
	return a, nil
}

func (a *App) Config() config.Config         { return a.cfg }
func (a *App) ConfigPath() string            { return a.configPath }
func (a *App) Registry() *highlight.Registry { return a.registry }
func (a *App) Theme() *theme.Theme           { return a.theme }
func (a *App) Renderer() *render.Renderer    { return a.renderer }

// Persist writes the registry's current settings into the config file.
func (a *App) Persist() error {
	if a.configPath == "" {
		return fmt.Errorf("no config file to save to")
	}
	return config.SaveHighlighting(a.fs, a.configPath, a.registry.Export())
}

// Export writes the current highlighting settings to path.
func (a *App) Export(path string) error {
	return config.Export(a.fs, path, a.registry.Export())
}

// Import replaces the highlighting settings with the contents of path. The
// registry is unchanged if the file is invalid.
func (a *App) Import(path string) error {
	settings, err := config.Import(a.fs, path)
	if err != nil {
		return err
	}
	return a.registry.Import(settings)
}

// WriteLines renders each line to w.
func (a *App) WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(a.renderer.Render(line) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Follow prints the last backlog lines of path and then every line appended
// to it until ctx is cancelled.
func (a *App) Follow(ctx context.Context, w io.Writer, path string, backlog int) error {
	cfg := tail.DefaultConfig(path)
	cfg.Backlog = backlog
	f, err := tail.New(cfg)
	if err != nil {
		return err
	}
	lines, err := f.Start()
	if err != nil {
		_ = f.Stop()
		return err
	}
	defer func() { _ = f.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if _, err := io.WriteString(w, a.renderer.Render(line)+"\n"); err != nil {
				return err
			}
		}
	}
}

// Close stops background listeners.
func (a *App) Close() {
	a.watchCancel()
	<-a.watchDone
	a.broker.Close()
}
