package amr

import "fmt"

// DefaultStrength is the decay time constant, in days, of a freshly created
// card.
const DefaultStrength = 1.0

// Defaults for each Config field. A zero Config resolves to exactly these.
const (
	DefaultRetentionTarget = 0.85
	DefaultMinInterval     = 0.5
	DefaultBoxCount        = 5
	DefaultStrengthFloor   = 0.1
	DefaultPerfectBonus    = 0.2
	DefaultEpsilon         = 1e-6
)

// DefaultMultipliers maps quality (0-5) to the factor applied to strength
// after a review.
var DefaultMultipliers = [6]float64{
	Blackout:  0.45,
	Wrong:     0.60,
	Familiar:  0.85,
	Difficult: 1.05,
	Hesitant:  1.15,
	Perfect:   1.30,
}

// Config holds the tuning constants of the AMR model.
// Zero values produce the defaults above; see field comments.
type Config struct {
	RetentionTarget float64    `json:"retention_target" yaml:"retention_target"` // zero → 0.85; recall probability the scheduler aims for
	MinInterval     float64    `json:"min_interval" yaml:"min_interval"`         // zero → 0.5; shortest allowed review interval, days
	BoxCount        int        `json:"box_count" yaml:"box_count"`               // zero → 5; number of Leitner tiers
	StrengthFloor   float64    `json:"strength_floor" yaml:"strength_floor"`     // zero → 0.1; hard lower bound on strength
	PerfectBonus    float64    `json:"perfect_bonus" yaml:"perfect_bonus"`       // zero → 0.2; flat strength bonus for quality 5
	Epsilon         float64    `json:"epsilon" yaml:"epsilon"`                   // zero → 1e-6; divisor floor in the decay curve
	Multipliers     [6]float64 `json:"multipliers" yaml:"multipliers"`           // zero → DefaultMultipliers, indexed by quality
}

// withDefaults returns a copy of cfg with zero-value fields resolved.
func (cfg Config) withDefaults() Config {
	out := cfg
	if out.RetentionTarget == 0 {
		out.RetentionTarget = DefaultRetentionTarget
	}
	if out.MinInterval == 0 {
		out.MinInterval = DefaultMinInterval
	}
	if out.BoxCount == 0 {
		out.BoxCount = DefaultBoxCount
	}
	if out.StrengthFloor == 0 {
		out.StrengthFloor = DefaultStrengthFloor
	}
	if out.PerfectBonus == 0 {
		out.PerfectBonus = DefaultPerfectBonus
	}
	if out.Epsilon == 0 {
		out.Epsilon = DefaultEpsilon
	}
	if out.Multipliers == [6]float64{} {
		out.Multipliers = DefaultMultipliers
	}
	return out
}

// validate checks a defaults-resolved Config.
func (cfg Config) validate() error {
	if cfg.RetentionTarget <= 0 || cfg.RetentionTarget >= 1 {
		return fmt.Errorf("%w: retention target %f outside (0, 1)", ErrInvalidConfig, cfg.RetentionTarget)
	}
	if cfg.MinInterval < 0 {
		return fmt.Errorf("%w: min interval %f must not be negative", ErrInvalidConfig, cfg.MinInterval)
	}
	if cfg.BoxCount < 1 {
		return fmt.Errorf("%w: box count %d must be at least 1", ErrInvalidConfig, cfg.BoxCount)
	}
	if cfg.StrengthFloor <= 0 {
		return fmt.Errorf("%w: strength floor %f must be positive", ErrInvalidConfig, cfg.StrengthFloor)
	}
	if cfg.PerfectBonus < 0 {
		return fmt.Errorf("%w: perfect bonus %f must not be negative", ErrInvalidConfig, cfg.PerfectBonus)
	}
	if cfg.Epsilon <= 0 {
		return fmt.Errorf("%w: epsilon %e must be positive", ErrInvalidConfig, cfg.Epsilon)
	}
	for q, m := range cfg.Multipliers {
		if m <= 0 {
			return fmt.Errorf("%w: multiplier[%d] = %f must be positive", ErrInvalidConfig, q, m)
		}
	}
	return nil
}
