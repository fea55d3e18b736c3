package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pgtail/internal/config"
	"github.com/zjrosen/pgtail/internal/highlight"
)

func newTestApp(t *testing.T, cfg config.Config) (*App, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	a, err := New(cfg, WithFs(fs), WithConfigPath("/cfg/config.yaml"))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, fs
}

func TestNew_AppliesConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Theme.Preset = "dracula"
	cfg.Highlighting.Disabled = []string{"misc.number"}
	cfg.Highlighting.Thresholds.Duration.SlowMs = 300

	a, _ := newTestApp(t, cfg)

	require.Equal(t, "dracula", a.Theme().Name())
	require.False(t, a.Registry().IsEnabled("misc.number"))
	require.Equal(t, 300.0, a.Registry().Threshold(highlight.DurationSlow))
	require.Equal(t, "/cfg/config.yaml", a.ConfigPath())
	require.Equal(t, cfg, a.Config())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Theme.Preset = "nope"
	_, err := New(cfg)
	require.ErrorContains(t, err, "theme")

	cfg = config.Defaults()
	cfg.Highlighting.Custom = []highlight.CustomDefinition{{Name: "bad", Pattern: "(", Priority: 5}}
	_, err = New(cfg)
	require.ErrorIs(t, err, highlight.ErrInvalidPattern)
}

func TestNew_CustomWithoutPriority(t *testing.T) {
	cfg := config.Defaults()
	cfg.Highlighting.Custom = []highlight.CustomDefinition{{Name: "tenant", Pattern: `tenant=\w+`}}
	require.NoError(t, config.ValidateHighlighting(cfg.Highlighting))

	a, _ := newTestApp(t, cfg)
	h, ok := a.Registry().Get("tenant")
	require.True(t, ok)
	require.Equal(t, highlight.DefaultCustomPriority, h.Priority())
}

func TestPersist(t *testing.T) {
	a, fs := newTestApp(t, config.Defaults())
	require.NoError(t, a.Registry().Disable("sql.keyword"))
	require.NoError(t, a.Persist())

	data, err := afero.ReadFile(fs, "/cfg/config.yaml")
	require.NoError(t, err)
	require.Contains(t, string(data), "sql.keyword")

	noPath, err := New(config.Defaults())
	require.NoError(t, err)
	defer noPath.Close()
	require.Error(t, noPath.Persist())
}

func TestExportImport(t *testing.T) {
	a, _ := newTestApp(t, config.Defaults())
	require.NoError(t, a.Registry().AddCustom(highlight.CustomDefinition{Name: "job", Pattern: `job-\d+`, Priority: highlight.DefaultCustomPriority}))
	require.NoError(t, a.Export("/out/hl.toml"))

	require.NoError(t, a.Registry().RemoveCustom("job"))
	require.NoError(t, a.Import("/out/hl.toml"))
	_, ok := a.Registry().Get("job")
	require.True(t, ok)

	require.Error(t, a.Import("/out/missing.yaml"))
	_, ok = a.Registry().Get("job")
	require.True(t, ok, "failed import leaves state unchanged")
}

func TestWriteLines(t *testing.T) {
	a, _ := newTestApp(t, config.Defaults())
	var buf bytes.Buffer
	lines := []string{
		"2024-01-15 10:30:45.123 UTC [12345] LOG:  duration: 6000.5 ms  statement: SELECT 1",
		"plain",
	}
	require.NoError(t, a.WriteLines(&buf, lines))
	require.Equal(t, strings.Join(lines, "\n")+"\n", ansi.Strip(buf.String()))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestFollow(t *testing.T) {
	a, _ := newTestApp(t, config.Defaults())
	path := filepath.Join(t.TempDir(), "pg.log")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	errc := make(chan error, 1)
	go func() { errc <- a.Follow(ctx, out, path, 2) }()

	require.Eventually(t, func() bool {
		return ansi.Strip(out.String()) == "two\nthree\n"
	}, 2*time.Second, 10*time.Millisecond)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("four\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.Eventually(t, func() bool {
		return strings.Contains(ansi.Strip(out.String()), "four\n")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-errc)
}
