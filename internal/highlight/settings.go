package highlight

// Settings is the persisted form of the highlighting configuration.
type Settings struct {
	Disabled   []string           `mapstructure:"disabled" yaml:"disabled" toml:"disabled"`
	Thresholds ThresholdSettings  `mapstructure:"thresholds" yaml:"thresholds" toml:"thresholds"`
	Custom     []CustomDefinition `mapstructure:"custom" yaml:"custom" toml:"custom"`
}

// ThresholdSettings groups the persisted cutoffs. Zero values mean "use the
// default".
type ThresholdSettings struct {
	Duration DurationThresholds `mapstructure:"duration" yaml:"duration" toml:"duration"`
	Size     SizeThresholds     `mapstructure:"size" yaml:"size" toml:"size"`
}

// DurationThresholds are duration cutoffs in milliseconds.
type DurationThresholds struct {
	WarningMs  float64 `mapstructure:"warning_ms" yaml:"warning_ms" toml:"warning_ms"`
	SlowMs     float64 `mapstructure:"slow_ms" yaml:"slow_ms" toml:"slow_ms"`
	CriticalMs float64 `mapstructure:"critical_ms" yaml:"critical_ms" toml:"critical_ms"`
}

// SizeThresholds are size cutoffs in bytes.
type SizeThresholds struct {
	WarningBytes  int64 `mapstructure:"warning_bytes" yaml:"warning_bytes" toml:"warning_bytes"`
	CriticalBytes int64 `mapstructure:"critical_bytes" yaml:"critical_bytes" toml:"critical_bytes"`
}

// DefaultSettings returns settings equivalent to a fresh registry.
func DefaultSettings() Settings {
	return Settings{
		Disabled: []string{},
		Thresholds: ThresholdSettings{
			Duration: DurationThresholds{
				WarningMs:  defaultThresholds[DurationWarning],
				SlowMs:     defaultThresholds[DurationSlow],
				CriticalMs: defaultThresholds[DurationCritical],
			},
			Size: SizeThresholds{
				WarningBytes:  int64(defaultThresholds[SizeWarning]),
				CriticalBytes: int64(defaultThresholds[SizeCritical]),
			},
		},
		Custom: []CustomDefinition{},
	}
}

// values returns the thresholds keyed by kind.
func (t ThresholdSettings) values() map[ThresholdKind]float64 {
	return map[ThresholdKind]float64{
		DurationWarning:  t.Duration.WarningMs,
		DurationSlow:     t.Duration.SlowMs,
		DurationCritical: t.Duration.CriticalMs,
		SizeWarning:      float64(t.Size.WarningBytes),
		SizeCritical:     float64(t.Size.CriticalBytes),
	}
}

func thresholdSettings(c *Config) ThresholdSettings {
	return ThresholdSettings{
		Duration: DurationThresholds{
			WarningMs:  c.Threshold(DurationWarning),
			SlowMs:     c.Threshold(DurationSlow),
			CriticalMs: c.Threshold(DurationCritical),
		},
		Size: SizeThresholds{
			WarningBytes:  int64(c.Threshold(SizeWarning)),
			CriticalBytes: int64(c.Threshold(SizeCritical)),
		},
	}
}
