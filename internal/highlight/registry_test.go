package highlight

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pgtail/internal/pubsub"
)

func testRegistry(opts ...Option) *Registry {
	builtins := []Highlighter{
		NewPattern("t.digits", CategoryObjects, 400, "digits", `\d+`, "digits"),
		NewPattern("t.words", CategoryMisc, 1000, "words", `[a-z]+`, "words"),
		NewDuration("t.duration", 300),
	}
	return NewRegistry(append([]Option{WithBuiltins(builtins)}, opts...)...)
}

// styleFrom returns the style of the first match produced by source.
func styleFrom(matches []Match, source string) string {
	for _, m := range matches {
		if m.Source == source {
			return m.Style
		}
	}
	return ""
}

func TestRegistry_EnableDisable(t *testing.T) {
	r := testRegistry()
	text := "abc 42"

	require.Len(t, r.Highlight(text), 2)

	require.NoError(t, r.Disable("t.digits"))
	require.False(t, r.IsEnabled("t.digits"))
	require.Equal(t, [][2]string{{"abc", "words"}}, spans(text, r.Highlight(text)))

	require.NoError(t, r.Enable("t.digits"))
	require.True(t, r.IsEnabled("t.digits"))
	require.Len(t, r.Highlight(text), 2)
}

func TestRegistry_UnknownNameIsNotFound(t *testing.T) {
	r := testRegistry()
	gen := r.Generation()

	require.ErrorIs(t, r.Enable("nope"), ErrNotFound)
	require.ErrorIs(t, r.Disable("nope"), ErrNotFound)
	require.ErrorIs(t, r.RemoveCustom("nope"), ErrNotFound)
	require.False(t, r.IsEnabled("nope"))
	require.Equal(t, gen, r.Generation())
}

func TestRegistry_ChainIsCachedUntilChange(t *testing.T) {
	r := testRegistry()
	first := r.BuildChain()
	require.Same(t, first, r.BuildChain())

	require.NoError(t, r.Disable("t.words"))
	second := r.BuildChain()
	require.NotSame(t, first, second)
	require.Equal(t, []string{"t.duration", "t.digits"}, second.Names())

	require.NoError(t, r.SetThreshold(DurationSlow, 700))
	require.NotSame(t, second, r.BuildChain())
}

func TestRegistry_AddCustom(t *testing.T) {
	r := testRegistry()
	require.NoError(t, r.AddCustom(CustomDefinition{Name: "ab", Pattern: `ab`, Priority: 50, Style: "mine"}))

	text := "abc"
	require.Equal(t, [][2]string{{"ab", "mine"}}, spans(text, r.Highlight(text)))

	h, ok := r.Get("ab")
	require.True(t, ok)
	require.Equal(t, CategoryCustom, h.Category())
}

func TestRegistry_AddCustomIsAtomic(t *testing.T) {
	r := testRegistry()
	require.NoError(t, r.AddCustom(CustomDefinition{Name: "mine", Pattern: "x", Priority: 1100}))
	before := r.Export()
	gen := r.Generation()

	tests := []struct {
		name string
		def  CustomDefinition
		err  error
	}{
		{"duplicate builtin", CustomDefinition{Name: "t.digits", Pattern: "x", Priority: 1}, ErrDuplicateName},
		{"duplicate custom", CustomDefinition{Name: "mine", Pattern: "y", Priority: 1}, ErrDuplicateName},
		{"bad pattern", CustomDefinition{Name: "other", Pattern: "[", Priority: 1}, ErrInvalidPattern},
		{"zero priority", CustomDefinition{Name: "other", Pattern: "x"}, ErrInvalidPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, r.AddCustom(tt.def), tt.err)
			require.Equal(t, before, r.Export())
			require.Equal(t, gen, r.Generation())
		})
	}
}

func TestRegistry_RemoveCustom(t *testing.T) {
	r := testRegistry()
	require.NoError(t, r.AddCustom(CustomDefinition{Name: "mine", Pattern: "x", Priority: 1100}))
	require.NoError(t, r.Disable("mine"))

	require.NoError(t, r.RemoveCustom("mine"))
	_, ok := r.Get("mine")
	require.False(t, ok)
	require.Empty(t, r.Export().Disabled)

	require.ErrorIs(t, r.RemoveCustom("t.digits"), ErrBuiltinReadOnly)
}

func TestRegistry_SetThreshold(t *testing.T) {
	r := testRegistry()
	text := "duration: 650.0 ms"
	require.Equal(t, StyleDurationSlow, styleFrom(r.Highlight(text), "t.duration"))

	require.NoError(t, r.SetThreshold(DurationSlow, 1000))
	require.Equal(t, 1000.0, r.Threshold(DurationSlow))
	require.Equal(t, StyleDurationWarning, styleFrom(r.Highlight(text), "t.duration"))

	require.ErrorIs(t, r.SetThreshold(DurationSlow, 0), ErrInvalidThreshold)
	require.ErrorIs(t, r.SetThreshold(DurationSlow, 6000), ErrInvalidThreshold)
	require.ErrorIs(t, r.SetThreshold("duration.glacial", 10), ErrUnknownThreshold)
	require.Equal(t, 1000.0, r.Threshold(DurationSlow))
}

func TestRegistry_SetThresholdRejectsNonFinite(t *testing.T) {
	r := testRegistry()
	gen := r.Generation()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, r.SetThreshold(DurationCritical, v), ErrInvalidThreshold)
		require.ErrorIs(t, r.SetThreshold(SizeWarning, v), ErrInvalidThreshold)
	}
	require.Equal(t, 5000.0, r.Threshold(DurationCritical))
	require.Equal(t, gen, r.Generation())

	bad := Settings{Thresholds: ThresholdSettings{Duration: DurationThresholds{CriticalMs: math.NaN()}}}
	require.ErrorIs(t, r.Import(bad), ErrInvalidThreshold)
	bad = Settings{Thresholds: ThresholdSettings{Duration: DurationThresholds{WarningMs: math.Inf(-1)}}}
	require.ErrorIs(t, r.Import(bad), ErrInvalidThreshold)
	require.Equal(t, DefaultSettings(), r.Export())
}

func TestRegistry_ResetToDefaults(t *testing.T) {
	r := testRegistry()
	require.NoError(t, r.AddCustom(CustomDefinition{Name: "mine", Pattern: "x", Priority: 1100}))
	require.NoError(t, r.Disable("t.words"))
	require.NoError(t, r.SetThreshold(DurationWarning, 50))

	r.ResetToDefaults()

	require.Equal(t, DefaultSettings(), r.Export())
	require.True(t, r.IsEnabled("t.words"))
	_, ok := r.Get("mine")
	require.False(t, ok)
}

func TestRegistry_ExportImportRoundTrip(t *testing.T) {
	r := testRegistry()
	require.NoError(t, r.AddCustom(CustomDefinition{Name: "mine", Pattern: `(?i)tenant`, Priority: 1200, Style: "tenant"}))
	require.NoError(t, r.Disable("t.words"))
	require.NoError(t, r.Disable("mine"))
	require.NoError(t, r.SetThreshold(DurationCritical, 9000))

	exported := r.Export()
	require.Equal(t, []string{"mine", "t.words"}, exported.Disabled)
	require.Equal(t, 9000.0, exported.Thresholds.Duration.CriticalMs)

	other := testRegistry()
	require.NoError(t, other.Import(exported))
	require.Equal(t, exported, other.Export())
	require.False(t, other.IsEnabled("mine"))
}

func TestRegistry_ImportIsAtomic(t *testing.T) {
	r := testRegistry()
	require.NoError(t, r.Disable("t.words"))
	before := r.Export()

	bad := []Settings{
		{Custom: []CustomDefinition{{Name: "a", Pattern: "x", Priority: 1}, {Name: "b", Pattern: "(", Priority: 1}}},
		{Custom: []CustomDefinition{{Name: "a", Pattern: "x", Priority: 1}, {Name: "a", Pattern: "y", Priority: 1}}},
		{Thresholds: ThresholdSettings{Duration: DurationThresholds{WarningMs: 900, SlowMs: 100}}},
		{Thresholds: ThresholdSettings{Size: SizeThresholds{WarningBytes: -1}}},
	}
	for _, s := range bad {
		require.Error(t, r.Import(s))
		require.Equal(t, before, r.Export())
	}
}

func TestRegistry_ImportDefaultsAndUnknownNames(t *testing.T) {
	r := testRegistry()
	require.NoError(t, r.Import(Settings{Disabled: []string{"gone", "t.digits"}}))

	s := r.Export()
	require.Equal(t, []string{"t.digits"}, s.Disabled)
	require.Equal(t, DefaultSettings().Thresholds, s.Thresholds)
}

func TestRegistry_ImportCustomWithoutPriority(t *testing.T) {
	r := testRegistry()
	require.NoError(t, r.Import(Settings{Custom: []CustomDefinition{{Name: "job", Pattern: `job-\d+`}}}))

	h, ok := r.Get("job")
	require.True(t, ok)
	require.Equal(t, DefaultCustomPriority, h.Priority())
	require.Equal(t, DefaultCustomPriority, r.Export().Custom[0].Priority)
	require.Equal(t, [][2]string{{"job-7", StyleCustom}}, spans("job-7", h.FindMatches("job-7", nil)))

	require.Error(t, r.AddCustom(CustomDefinition{Name: "strict", Pattern: "x"}))
	require.Error(t, r.Import(Settings{Custom: []CustomDefinition{{Name: "neg", Pattern: "x", Priority: -1}}}))
}

func TestRegistry_ListAndNames(t *testing.T) {
	r := testRegistry()
	require.NoError(t, r.AddCustom(CustomDefinition{Name: "mine", Pattern: "x", Priority: 1100}))
	require.NoError(t, r.Disable("t.words"))

	infos := r.List()
	require.Len(t, infos, 4)
	require.Equal(t, "t.duration", infos[0].Name)
	require.Equal(t, "t.digits", infos[1].Name)
	require.Equal(t, "t.words", infos[2].Name)
	require.False(t, infos[2].Enabled)
	require.True(t, infos[3].Custom)
	require.Equal(t, "x", infos[3].Pattern)
	require.Equal(t, StyleCustom, infos[3].Style)

	require.Equal(t, []string{"mine", "t.digits", "t.duration", "t.words"}, r.Names())
}

func TestRegistry_PublishesChanges(t *testing.T) {
	broker := pubsub.NewBroker[RegistryEvent]()
	defer broker.Close()
	r := testRegistry(WithBroker(broker))
	require.Same(t, broker, r.Broker())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := broker.Subscribe(ctx)

	require.NoError(t, r.Disable("t.words"))

	select {
	case ev := <-events:
		require.Equal(t, pubsub.ChangedEvent, ev.Type)
		require.Equal(t, "disable", ev.Payload.Action)
		require.Equal(t, "t.words", ev.Payload.Name)
		require.Equal(t, r.Generation(), ev.Payload.Generation)
	case <-time.After(time.Second):
		t.Fatal("no registry event")
	}
}

func TestRegistry_ConfigSnapshot(t *testing.T) {
	r := testRegistry()
	cfg := r.Config()
	require.NoError(t, cfg.SetThreshold(DurationWarning, 1))
	require.Equal(t, 100.0, r.Threshold(DurationWarning))
}
