package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pgtail/internal/config"
	"github.com/zjrosen/pgtail/internal/highlight"
)

// newConfigFile writes the default template to a temp dir and returns its path.
func newConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(afero.NewOsFs(), path))
	return path
}

func resetFlags() {
	viper.Reset()
	cfgFile, themeFlag = "", ""
	debug, logStderr, logFile = false, false, "pgtail-debug.log"
	viewLines, followLines = 0, 0
	tokensAll, skipPersist = false, false
	listCategory = ""
	addStyle, addPriority = highlight.StyleCustom, highlight.DefaultCustomPriority
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return ansi.Strip(out.String()), err
}

func TestDetectCommand(t *testing.T) {
	cfgPath := newConfigFile(t)
	out, err := run(t, "", "--config", cfgPath, "detect", "duration: 1.5 ms  statement: SELECT 1 ")
	require.NoError(t, err)
	require.Contains(t, out, "rule:   duration")
	require.Contains(t, out, `sql:    "SELECT 1"`)
	require.Contains(t, out, `suffix: " "`)

	out, err = run(t, "", "--config", cfgPath, "detect", "checkpoint starting: time")
	require.NoError(t, err)
	require.Contains(t, out, "no SQL detected")
}

func TestTokensCommand(t *testing.T) {
	cfgPath := newConfigFile(t)
	out, err := run(t, "", "--config", cfgPath, "tokens", "SELECT count(*) FROM t")
	require.NoError(t, err)
	require.Contains(t, out, "keyword")
	require.Contains(t, out, "function")
	require.Contains(t, out, `"count"`)
	require.NotContains(t, out, "whitespace")
	require.Contains(t, out, "SELECT count(*) FROM t")
}

func TestViewCommand_File(t *testing.T) {
	cfgPath := newConfigFile(t)
	logPath := filepath.Join(t.TempDir(), "pg.log")
	content := "LOG:  one\nERROR:  two\nLOG:  three\n"
	require.NoError(t, os.WriteFile(logPath, []byte(content), 0o644))

	out, err := run(t, "", "--config", cfgPath, "view", logPath)
	require.NoError(t, err)
	require.Equal(t, content, out)

	out, err = run(t, "", "--config", cfgPath, "view", "--lines", "1", logPath)
	require.NoError(t, err)
	require.Equal(t, "LOG:  three\n", out)
}

func TestViewCommand_Stdin(t *testing.T) {
	cfgPath := newConfigFile(t)
	out, err := run(t, "a\nb\n", "--config", cfgPath, "view")
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", out)
}

func TestViewCommand_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme:\n  preset: neon\n"), 0o644))

	_, err := run(t, "", "--config", cfgPath, "view")
	require.ErrorContains(t, err, "invalid configuration")
}

func TestThemesCommand(t *testing.T) {
	out, err := run(t, "", "--config", newConfigFile(t), "themes")
	require.NoError(t, err)
	for _, name := range []string{"default", "dracula", "nord", "catppuccin-mocha", "mono"} {
		require.Contains(t, out, name+" - ")
	}
	require.Contains(t, out, "deadlock detected")
}

func TestHighlightersCommands_DisablePersists(t *testing.T) {
	cfgPath := newConfigFile(t)

	_, err := run(t, "", "--config", cfgPath, "highlighters", "disable", "misc.number", "sql.keyword")
	require.NoError(t, err)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "misc.number")
	require.Contains(t, string(data), "# pgtail configuration")

	out, err := run(t, "", "--config", cfgPath, "highlighters", "list", "--category", "misc")
	require.NoError(t, err)
	var numberRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "misc.number") {
			numberRow = line
		}
	}
	require.Contains(t, numberRow, "no")
	require.NotContains(t, out, "sql.keyword")

	_, err = run(t, "", "--config", cfgPath, "highlighters", "enable", "misc.number")
	require.NoError(t, err)
	_, err = run(t, "", "--config", cfgPath, "highlighters", "disable", "no.such")
	require.ErrorIs(t, err, highlight.ErrNotFound)
}

func TestHighlightersCommands_Custom(t *testing.T) {
	cfgPath := newConfigFile(t)

	_, err := run(t, "", "--config", cfgPath, "highlighters", "add", "tenant", `tenant=\w+`, "--style", "custom.tenant")
	require.NoError(t, err)

	out, err := run(t, "", "--config", cfgPath, "highlighters", "list", "--category", "custom")
	require.NoError(t, err)
	require.Contains(t, out, "tenant")
	require.Contains(t, out, "custom.tenant")

	_, err = run(t, "", "--config", cfgPath, "highlighters", "add", "tenant", `x`)
	require.ErrorIs(t, err, highlight.ErrDuplicateName)

	_, err = run(t, "", "--config", cfgPath, "highlighters", "remove", "tenant")
	require.NoError(t, err)
	out, err = run(t, "", "--config", cfgPath, "highlighters", "list", "--category", "custom")
	require.NoError(t, err)
	require.NotContains(t, out, "tenant")
}

func TestHighlightersCommands_Threshold(t *testing.T) {
	cfgPath := newConfigFile(t)

	_, err := run(t, "", "--config", cfgPath, "highlighters", "threshold", "duration.slow", "750")
	require.NoError(t, err)

	out, err := run(t, "", "--config", cfgPath, "highlighters", "threshold")
	require.NoError(t, err)
	require.Contains(t, out, "duration.slow")
	require.Contains(t, out, "750")

	_, err = run(t, "", "--config", cfgPath, "highlighters", "threshold", "duration.slow", "50")
	require.ErrorIs(t, err, highlight.ErrInvalidThreshold)
	_, err = run(t, "", "--config", cfgPath, "highlighters", "threshold", "duration.critical", "NaN")
	require.ErrorIs(t, err, highlight.ErrInvalidThreshold)
	_, err = run(t, "", "--config", cfgPath, "highlighters", "threshold", "latency", "50")
	require.ErrorIs(t, err, highlight.ErrUnknownThreshold)
	_, err = run(t, "", "--config", cfgPath, "highlighters", "threshold", "duration.slow")
	require.Error(t, err)

	_, err = run(t, "", "--config", cfgPath, "highlighters", "reset")
	require.NoError(t, err)
	out, err = run(t, "", "--config", cfgPath, "highlighters", "threshold")
	require.NoError(t, err)
	require.Contains(t, out, "500")
}

func TestHighlightersCommands_ExportImport(t *testing.T) {
	cfgPath := newConfigFile(t)
	exportPath := filepath.Join(t.TempDir(), "hl.toml")

	_, err := run(t, "", "--config", cfgPath, "highlighters", "disable", "wal.lsn")
	require.NoError(t, err)
	_, err = run(t, "", "--config", cfgPath, "highlighters", "export", exportPath)
	require.NoError(t, err)

	other := newConfigFile(t)
	_, err = run(t, "", "--config", other, "highlighters", "import", exportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(other)
	require.NoError(t, err)
	require.Contains(t, string(data), "wal.lsn")
}

func TestHighlightersCommands_NoSave(t *testing.T) {
	cfgPath := newConfigFile(t)
	before, err := os.ReadFile(cfgPath)
	require.NoError(t, err)

	_, err = run(t, "", "--config", cfgPath, "highlighters", "--no-save", "disable", "misc.url")
	require.NoError(t, err)

	after, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestLogStderr(t *testing.T) {
	cfgPath := newConfigFile(t)
	logPath := filepath.Join(t.TempDir(), "debug.log")
	resetFlags()
	t.Cleanup(resetFlags)

	var out, stderr bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"--config", cfgPath, "--log-stderr", "--log-file", logPath,
		"highlighters", "disable", "misc.uuid"})
	require.NoError(t, rootCmd.Execute())

	require.Contains(t, stderr.String(), "[INFO] [cli] command started")
	require.Contains(t, stderr.String(), "[DEBUG] [registry] configuration changed action=disable name=misc.uuid")
	require.NotContains(t, out.String(), "[cli]")
	require.FileExists(t, logPath)
}
