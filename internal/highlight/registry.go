package highlight

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/zjrosen/pgtail/internal/log"
	"github.com/zjrosen/pgtail/internal/pubsub"
)

// RegistryEvent describes a configuration change.
type RegistryEvent struct {
	Action     string // enable, disable, add, remove, threshold, reset, import
	Name       string // highlighter name or threshold kind, if any
	Generation uint64
}

// Registry owns the built-in and custom highlighters and the runtime
// Config. Every mutation invalidates the cached chain and bumps the
// generation; the next BuildChain rebuilds it. A Registry is safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	builtins   []Highlighter
	byName     map[string]Highlighter
	customs    []*CustomHighlighter
	cfg        *Config
	chain      *Chain
	generation uint64
	broker     *pubsub.Broker[RegistryEvent]
}

// Option configures a Registry.
type Option func(*Registry)

// WithBroker publishes a RegistryEvent on b after every mutation.
func WithBroker(b *pubsub.Broker[RegistryEvent]) Option {
	return func(r *Registry) { r.broker = b }
}

// WithBuiltins replaces the built-in catalogue, mainly for tests.
func WithBuiltins(hs []Highlighter) Option {
	return func(r *Registry) { r.builtins = hs }
}

// NewRegistry returns a registry holding the built-in highlighters with
// default configuration.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(r)
	}
	if r.builtins == nil {
		r.builtins = Builtins()
	}
	r.byName = make(map[string]Highlighter, len(r.builtins))
	for _, h := range r.builtins {
		r.byName[h.Name()] = h
	}
	return r
}

// Broker returns the change event broker, or nil.
func (r *Registry) Broker() *pubsub.Broker[RegistryEvent] {
	return r.broker
}

// Generation increases with every configuration change.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// Enable turns on the named highlighter.
func (r *Registry) Enable(name string) error {
	return r.setEnabled(name, true)
}

// Disable turns off the named highlighter.
func (r *Registry) Disable(name string) error {
	return r.setEnabled(name, false)
}

func (r *Registry) setEnabled(name string, enabled bool) error {
	action := "disable"
	if enabled {
		action = "enable"
	}

	r.mu.Lock()
	if _, ok := r.byName[name]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	r.cfg.setEnabled(name, enabled)
	ev := r.invalidateLocked(action, name)
	r.mu.Unlock()

	r.publish(ev)
	return nil
}

// IsEnabled reports whether name is registered and enabled.
func (r *Registry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok && r.cfg.IsEnabled(name)
}

// AddCustom validates and registers a user-defined highlighter. On any
// validation failure the registry is left unchanged.
func (r *Registry) AddCustom(def CustomDefinition) error {
	h, err := NewCustom(def)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if _, taken := r.byName[h.Name()]; taken {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrDuplicateName, h.Name())
	}
	r.customs = append(r.customs, h)
	r.byName[h.Name()] = h
	ev := r.invalidateLocked("add", h.Name())
	r.mu.Unlock()

	log.Info(log.CatRegistry, "added custom highlighter", "name", h.Name(), "priority", h.Priority())
	r.publish(ev)
	return nil
}

// RemoveCustom unregisters a user-defined highlighter.
func (r *Registry) RemoveCustom(name string) error {
	r.mu.Lock()
	h, ok := r.byName[name]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if _, custom := h.(*CustomHighlighter); !custom {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrBuiltinReadOnly, name)
	}
	r.customs = slices.DeleteFunc(r.customs, func(c *CustomHighlighter) bool {
		return c.Name() == name
	})
	delete(r.byName, name)
	r.cfg.setEnabled(name, true)
	ev := r.invalidateLocked("remove", name)
	r.mu.Unlock()

	log.Info(log.CatRegistry, "removed custom highlighter", "name", name)
	r.publish(ev)
	return nil
}

// SetThreshold changes one severity cutoff.
func (r *Registry) SetThreshold(kind ThresholdKind, value float64) error {
	r.mu.Lock()
	if err := r.cfg.SetThreshold(kind, value); err != nil {
		r.mu.Unlock()
		return err
	}
	ev := r.invalidateLocked("threshold", string(kind))
	r.mu.Unlock()

	log.Info(log.CatRegistry, "threshold changed", "kind", kind, "value", value)
	r.publish(ev)
	return nil
}

// Threshold returns the current cutoff for kind.
func (r *Registry) Threshold(kind ThresholdKind) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg.Threshold(kind)
}

// ResetToDefaults enables every built-in, restores default thresholds and
// removes all custom highlighters.
func (r *Registry) ResetToDefaults() {
	r.mu.Lock()
	for _, c := range r.customs {
		delete(r.byName, c.Name())
	}
	r.customs = nil
	r.cfg = DefaultConfig()
	ev := r.invalidateLocked("reset", "")
	r.mu.Unlock()

	log.Info(log.CatRegistry, "reset to defaults")
	r.publish(ev)
}

// Export returns the current configuration in persisted form.
func (r *Registry) Export() Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Settings{
		Disabled:   r.cfg.Disabled(),
		Thresholds: thresholdSettings(r.cfg),
		Custom:     make([]CustomDefinition, 0, len(r.customs)),
	}
	if s.Disabled == nil {
		s.Disabled = []string{}
	}
	for _, c := range r.customs {
		s.Custom = append(s.Custom, c.Definition())
	}
	return s
}

// Import replaces the configuration with s. Custom highlighters, thresholds
// and disabled names are all validated before anything changes; zero
// thresholds keep their defaults and unknown disabled names are skipped.
func (r *Registry) Import(s Settings) error {
	cfg := DefaultConfig()
	values := s.Thresholds.values()
	for _, kind := range ThresholdKinds() {
		v := values[kind]
		if v == 0 {
			v = defaultThresholds[kind]
		}
		if err := checkThresholdValue(kind, v); err != nil {
			return err
		}
		cfg.thresholds[kind] = v
	}
	if err := validateThresholds(cfg.thresholds); err != nil {
		return err
	}

	r.mu.Lock()
	ev, err := r.replaceLocked(s, cfg)
	r.mu.Unlock()
	if err != nil {
		return err
	}

	r.publish(ev)
	return nil
}

func (r *Registry) replaceLocked(s Settings, cfg *Config) (RegistryEvent, error) {
	byName := make(map[string]Highlighter, len(r.builtins)+len(s.Custom))
	for _, h := range r.builtins {
		byName[h.Name()] = h
	}
	customs := make([]*CustomHighlighter, 0, len(s.Custom))
	for _, def := range s.Custom {
		if def.Priority == 0 {
			def.Priority = DefaultCustomPriority
		}
		h, err := NewCustom(def)
		if err != nil {
			return RegistryEvent{}, err
		}
		if _, taken := byName[h.Name()]; taken {
			return RegistryEvent{}, fmt.Errorf("%w: %s", ErrDuplicateName, h.Name())
		}
		byName[h.Name()] = h
		customs = append(customs, h)
	}

	for _, name := range s.Disabled {
		if _, ok := byName[name]; !ok {
			log.Warn(log.CatRegistry, "ignoring unknown disabled highlighter", "name", name)
			continue
		}
		cfg.setEnabled(name, false)
	}

	r.byName = byName
	r.customs = customs
	r.cfg = cfg

	log.Info(log.CatRegistry, "imported settings",
		"custom", len(customs), "disabled", len(cfg.disabled))
	return r.invalidateLocked("import", ""), nil
}

// BuildChain returns the chain of enabled highlighters, rebuilding it only
// after a configuration change.
func (r *Registry) BuildChain() *Chain {
	r.mu.RLock()
	chain := r.chain
	r.mu.RUnlock()
	if chain != nil {
		return chain
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.chain != nil {
		return r.chain
	}

	enabled := make([]Highlighter, 0, len(r.builtins)+len(r.customs))
	for _, h := range r.builtins {
		if r.cfg.IsEnabled(h.Name()) {
			enabled = append(enabled, h)
		}
	}
	for _, h := range r.customs {
		if r.cfg.IsEnabled(h.Name()) {
			enabled = append(enabled, h)
		}
	}
	r.chain = NewChain(enabled, r.cfg.Clone())

	log.Debug(log.CatRegistry, "built highlighter chain",
		"highlighters", r.chain.Len(), "generation", r.generation)
	return r.chain
}

// Highlight runs the current chain over text.
func (r *Registry) Highlight(text string) []Match {
	return r.BuildChain().Highlight(text)
}

// Get returns the named highlighter.
func (r *Registry) Get(name string) (Highlighter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byName[name]
	return h, ok
}

// List describes every registered highlighter ordered by priority, then name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.byName))
	for _, h := range r.byName {
		info := Info{
			Name:        h.Name(),
			Category:    h.Category(),
			Priority:    h.Priority(),
			Description: h.Description(),
			Enabled:     r.cfg.IsEnabled(h.Name()),
		}
		if c, ok := h.(*CustomHighlighter); ok {
			info.Custom = true
			info.Pattern = c.Definition().Pattern
			info.Style = c.Definition().Style
		}
		infos = append(infos, info)
	}
	slices.SortFunc(infos, func(a, b Info) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return infos
}

// Names returns all registered highlighter names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.byName))
}

// Config returns a snapshot of the runtime config.
func (r *Registry) Config() *Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg.Clone()
}

func (r *Registry) invalidateLocked(action, name string) RegistryEvent {
	r.chain = nil
	r.generation++
	log.Debug(log.CatRegistry, "configuration changed",
		"action", action, "name", name, "generation", r.generation)
	return RegistryEvent{Action: action, Name: name, Generation: r.generation}
}

func (r *Registry) publish(ev RegistryEvent) {
	if r.broker != nil {
		r.broker.Publish(pubsub.ChangedEvent, ev)
	}
}
