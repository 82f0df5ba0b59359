package amr

import (
	"errors"
	"testing"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assertFloat(t, "RetentionTarget", cfg.RetentionTarget, 0.85)
	assertFloat(t, "MinInterval", cfg.MinInterval, 0.5)
	if cfg.BoxCount != 5 {
		t.Errorf("BoxCount = %d, want 5", cfg.BoxCount)
	}
	assertFloat(t, "StrengthFloor", cfg.StrengthFloor, 0.1)
	assertFloat(t, "PerfectBonus", cfg.PerfectBonus, 0.2)
	assertFloat(t, "Epsilon", cfg.Epsilon, 1e-6)
	if cfg.Multipliers != DefaultMultipliers {
		t.Errorf("Multipliers = %v, want defaults", cfg.Multipliers)
	}
}

func TestConfigWithDefaultsKeepsExplicit(t *testing.T) {
	cfg := Config{RetentionTarget: 0.9, BoxCount: 3}.withDefaults()
	assertFloat(t, "RetentionTarget", cfg.RetentionTarget, 0.9)
	if cfg.BoxCount != 3 {
		t.Errorf("BoxCount = %d, want 3", cfg.BoxCount)
	}
	// The rest still fill in.
	assertFloat(t, "MinInterval", cfg.MinInterval, 0.5)
}

func TestDefaultMultiplierTable(t *testing.T) {
	// The fixed quality→multiplier table.
	want := map[Quality]float64{
		Blackout:  0.45,
		Wrong:     0.60,
		Familiar:  0.85,
		Difficult: 1.05,
		Hesitant:  1.15,
		Perfect:   1.30,
	}
	for q, m := range want {
		assertFloat(t, q.String(), DefaultMultipliers[q], m)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"retention target zero", func(c *Config) { c.RetentionTarget = -0.85 }},
		{"retention target one", func(c *Config) { c.RetentionTarget = 1.0 }},
		{"negative min interval", func(c *Config) { c.MinInterval = -0.5 }},
		{"box count below one", func(c *Config) { c.BoxCount = -2 }},
		{"negative strength floor", func(c *Config) { c.StrengthFloor = -0.1 }},
		{"negative perfect bonus", func(c *Config) { c.PerfectBonus = -0.2 }},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1e-6 }},
		{"zero multiplier", func(c *Config) { c.Multipliers[Difficult] = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}.withDefaults()
			tt.mut(&cfg)
			if err := cfg.validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigValidateDefaultsPass(t *testing.T) {
	if err := (Config{}.withDefaults()).validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}
