package tail

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestFollower(t *testing.T, path string, fromStart bool) <-chan string {
	t.Helper()
	f, err := New(Config{Path: path, Debounce: 10 * time.Millisecond, FromStart: fromStart})
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Stop() })

	lines, err := f.Start()
	require.NoError(t, err)
	return lines
}

func appendFile(t *testing.T, path, content string) {
	t.Helper()
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = file.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, file.Close())
}

func receive(t *testing.T, lines <-chan string, n int) []string {
	t.Helper()
	var got []string
	timeout := time.After(2 * time.Second)
	for len(got) < n {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatalf("channel closed after %v", got)
			}
			got = append(got, line)
		case <-timeout:
			t.Fatalf("timed out after %v", got)
		}
	}
	return got
}

func TestFollower_EmitsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pg.log")
	require.NoError(t, os.WriteFile(path, []byte("old line\n"), 0o644))
	lines := newTestFollower(t, path, false)

	appendFile(t, path, "LOG:  one\nLOG:  two\n")

	require.Equal(t, []string{"LOG:  one", "LOG:  two"}, receive(t, lines, 2))
}

func TestFollower_FromStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pg.log")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0o644))
	lines := newTestFollower(t, path, true)

	require.Equal(t, []string{"first", "second"}, receive(t, lines, 2))
}

func TestFollower_HoldsPartialLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pg.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	lines := newTestFollower(t, path, false)

	appendFile(t, path, "LOG:  dura")
	select {
	case line := <-lines:
		t.Fatalf("unexpected line %q", line)
	case <-time.After(100 * time.Millisecond):
	}

	appendFile(t, path, "tion: 1.0 ms\r\n")
	require.Equal(t, []string{"LOG:  duration: 1.0 ms"}, receive(t, lines, 1))
}

func TestFollower_Truncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pg.log")
	require.NoError(t, os.WriteFile(path, []byte("a fairly long existing line\n"), 0o644))
	lines := newTestFollower(t, path, false)

	require.NoError(t, os.WriteFile(path, []byte("new\n"), 0o644))

	require.Equal(t, []string{"new"}, receive(t, lines, 1))
}

func TestFollower_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pg.log")
	require.NoError(t, os.WriteFile(path, []byte("before\n"), 0o644))
	lines := newTestFollower(t, path, false)

	require.NoError(t, os.Rename(path, filepath.Join(dir, "pg.log.1")))
	require.NoError(t, os.WriteFile(path, []byte("after rotation\n"), 0o644))

	require.Equal(t, []string{"after rotation"}, receive(t, lines, 1))
}

func TestFollower_StopClosesChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pg.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := New(DefaultConfig(path))
	require.NoError(t, err)
	lines, err := f.Start()
	require.NoError(t, err)

	require.NoError(t, f.Stop())
	require.NoError(t, f.Stop())

	select {
	case _, ok := <-lines:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestFollower_MissingFile(t *testing.T) {
	f, err := New(DefaultConfig(filepath.Join(t.TempDir(), "missing.log")))
	require.NoError(t, err)
	defer func() { _ = f.Stop() }()

	_, err = f.Start()
	require.ErrorContains(t, err, "open log")
}

func TestFollower_Backlog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pg.log")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o644))

	cfg := DefaultConfig(path)
	cfg.Debounce = 10 * time.Millisecond
	cfg.Backlog = 2
	f, err := New(cfg)
	require.NoError(t, err)
	defer func() { _ = f.Stop() }()
	lines, err := f.Start()
	require.NoError(t, err)

	require.Equal(t, []string{"b", "c"}, receive(t, lines, 2))

	appendFile(t, path, "d\n")
	require.Equal(t, []string{"d"}, receive(t, lines, 1))
}
