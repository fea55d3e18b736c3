package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pgtail/internal/highlight"
)

func loadConfigFromYAML(t *testing.T, content string) Config {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))

	cfg := Defaults()
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.True(t, cfg.Display.StripANSI)
	require.Zero(t, cfg.Display.MaxWidth)
	require.Equal(t, 200, cfg.Tail.Lines)
	require.Equal(t, highlight.DefaultSettings(), cfg.Highlighting)
	require.NoError(t, Validate(cfg))
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, DefaultConfigTemplate())
	defaults := Defaults()

	require.Equal(t, "default", cfg.Theme.Preset)
	require.Equal(t, defaults.Display, cfg.Display)
	require.Equal(t, defaults.Tail, cfg.Tail)
	require.Equal(t, defaults.Highlighting.Thresholds, cfg.Highlighting.Thresholds)
	require.Empty(t, cfg.Highlighting.Disabled)
	require.Empty(t, cfg.Highlighting.Custom)
	require.NoError(t, Validate(cfg))
}

func TestLoad_Highlighting(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
highlighting:
  disabled: [misc.number, sql.keyword]
  thresholds:
    duration:
      warning_ms: 50
      slow_ms: 250
      critical_ms: 1000
  custom:
    - name: tenant
      pattern: 'tenant=\w+'
      style: custom.tenant
      priority: 1200
`)
	require.Equal(t, []string{"misc.number", "sql.keyword"}, cfg.Highlighting.Disabled)
	require.Equal(t, 250.0, cfg.Highlighting.Thresholds.Duration.SlowMs)
	require.Equal(t, highlight.DefaultSettings().Thresholds.Size, cfg.Highlighting.Thresholds.Size)
	require.Equal(t, []highlight.CustomDefinition{
		{Name: "tenant", Pattern: `tenant=\w+`, Style: "custom.tenant", Priority: 1200},
	}, cfg.Highlighting.Custom)
	require.NoError(t, Validate(cfg))
}

func TestThemeConfig_FlattenedColors(t *testing.T) {
	tc := ThemeConfig{
		Preset: "nord",
		Colors: map[string]any{
			"duration": map[string]any{
				"critical": "#FF0000",
				"slow":     "#FF8800",
			},
			"sql.keyword": "#00FF00",
			"wal": map[any]any{
				"lsn": "#0000FF",
			},
		},
	}
	require.Equal(t, map[string]string{
		"duration.critical": "#FF0000",
		"duration.slow":     "#FF8800",
		"sql.keyword":       "#00FF00",
		"wal.lsn":           "#0000FF",
	}, tc.FlattenedColors())

	resolved := tc.Resolve()
	require.Equal(t, "nord", resolved.Preset)
	require.Len(t, resolved.Colors, 4)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown preset", func(c *Config) { c.Theme.Preset = "solarized" }, `unknown preset "solarized"`},
		{"bad color", func(c *Config) { c.Theme.Colors = map[string]any{"pid": "red"} }, "invalid hex color for pid"},
		{"negative width", func(c *Config) { c.Display.MaxWidth = -1 }, "display.max_width"},
		{"negative lines", func(c *Config) { c.Tail.Lines = -5 }, "tail.lines"},
		{"threshold order", func(c *Config) { c.Highlighting.Thresholds.Duration.SlowMs = 10 }, "highlighting"},
		{"bad custom", func(c *Config) {
			c.Highlighting.Custom = []highlight.CustomDefinition{{Name: "x", Pattern: "(", Priority: 1}}
		}, "highlighting"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Theme.Preset = "nope"
	cfg.Tail.Lines = -1
	err := Validate(cfg)
	require.ErrorContains(t, err, "theme.preset")
	require.ErrorContains(t, err, "tail.lines")
}

func TestWriteDefaultConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/u/.config/pgtail/config.yaml"

	require.NoError(t, WriteDefaultConfig(fs, path))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestWriteDefaultConfig_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	require.Error(t, WriteDefaultConfig(fs, "/etc/pgtail/config.yaml"))
}
