package amr

import "math"

// model holds a resolved Config plus constants precomputed from it.
type model struct {
	cfg    Config
	factor float64 // -ln(RetentionTarget); interval per unit strength
}

// newModel creates a model with the precomputed interval factor.
func newModel(cfg Config) model {
	return model{cfg: cfg, factor: -math.Log(cfg.RetentionTarget)}
}

// retention computes R(t, S) = e^(-t / S) on the forgetting curve.
// The divisor is floored at Epsilon so a pathologically tiny strength never
// divides by zero. Negative elapsed time yields a value above 1; callers
// that trust their clocks never see it, and the value is deliberately left
// uncapped.
func (m *model) retention(elapsedDays, strength float64) float64 {
	return math.Exp(-elapsedDays / math.Max(m.cfg.Epsilon, strength))
}

// interval solves e^(-t/S) = RetentionTarget for t:
// t = -S * ln(RetentionTarget), floored at MinInterval days.
func (m *model) interval(strength float64) float64 {
	t := strength * m.factor
	return math.Max(t, m.cfg.MinInterval)
}

// nextStrength applies the quality multiplier to strength.
// S' = max(StrengthFloor, S * mult[q]), plus PerfectBonus after the floor
// when the recall was perfect.
func (m *model) nextStrength(strength float64, q Quality) float64 {
	s := math.Max(m.cfg.StrengthFloor, strength*m.cfg.Multipliers[q])
	if q == Perfect {
		s += m.cfg.PerfectBonus
	}
	return s
}

// nextBox advances, resets, or holds the Leitner box.
// Quality >= 4 moves up one tier capped at BoxCount; quality <= 2 resets to
// tier 1; quality 3 holds.
func (m *model) nextBox(box int, q Quality) int {
	switch {
	case q >= Hesitant:
		return min(m.cfg.BoxCount, box+1)
	case q <= Familiar:
		return 1
	default:
		return box
	}
}
