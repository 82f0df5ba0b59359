package tuner

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/adaptive-recall/amr"
)

var (
	// ErrEmptyHistories is returned when no review events are provided.
	ErrEmptyHistories = errors.New("tuner: no review events provided")

	// ErrInsufficientData is returned when labeled reviews are fewer than MinReviews.
	ErrInsufficientData = errors.New("tuner: insufficient labeled reviews for calibration")
)

// TunerConfig configures the calibration process.
// Zero values are replaced with sensible defaults.
type TunerConfig struct {
	Config              amr.Config `json:"config"`               // base scheduling config; zero → amr defaults
	MinReviews          int        `json:"min_reviews"`          // default 100
	ScaleCandidates     []float64  `json:"scale_candidates"`     // default 0.70..1.30 in steps of 0.10
	RetentionCandidates []float64  `json:"retention_candidates"` // default {0.70, 0.75, 0.80, 0.85, 0.90, 0.95}
}

// Tuner calibrates AMR scheduling constants from review events: a scale
// factor for the multiplier table via replay loss, and a retention target
// via Monte Carlo simulation of review load.
type Tuner struct {
	base       amr.Config
	minReviews int
	scales     []float64
	retentions []float64
}

// NewTuner creates a Tuner with the given config.
// Zero-valued fields receive defaults: MinReviews=100, ScaleCandidates
// spanning 0.70-1.30, RetentionCandidates spanning 0.70-0.95.
func NewTuner(cfg TunerConfig) *Tuner {
	t := &Tuner{
		base:       cfg.Config,
		minReviews: cfg.MinReviews,
		scales:     cfg.ScaleCandidates,
		retentions: cfg.RetentionCandidates,
	}
	if t.minReviews == 0 {
		t.minReviews = 100
	}
	if t.scales == nil {
		t.scales = []float64{0.70, 0.80, 0.90, 1.00, 1.10, 1.20, 1.30}
	}
	if t.retentions == nil {
		t.retentions = []float64{0.70, 0.75, 0.80, 0.85, 0.90, 0.95}
	}
	return t
}

// ComputeOptimalScale grid-searches a factor applied uniformly to the
// quality multiplier table and returns the candidate with minimal replay
// BCE loss.
//
// Returns ErrEmptyHistories when hs is empty, or ErrInsufficientData (along
// with the neutral scale 1.0) when labeled reviews are fewer than
// MinReviews. The context can cancel the search between candidates.
func (t *Tuner) ComputeOptimalScale(ctx context.Context, hs Histories) (float64, error) {
	if len(hs) == 0 {
		return 0, ErrEmptyHistories
	}

	data := formatHistories(hs)
	if countLabeled(data) < t.minReviews {
		return 1.0, ErrInsufficientData
	}

	bestScale := 1.0
	bestLoss := math.Inf(1)

	for _, scale := range t.scales {
		if err := ctx.Err(); err != nil {
			return bestScale, err
		}
		loss := replayLoss(scaledConfig(t.base, scale), data)
		if loss < bestLoss {
			bestLoss = loss
			bestScale = scale
		}
	}

	return bestScale, nil
}

// ComputeOptimalRetention finds the retention target (from the candidates)
// with minimal simulated review load per retained card.
//
// Quality outcomes in the simulation are drawn from the empirical
// distributions of the provided histories. Returns ErrEmptyHistories or
// ErrInsufficientData on unusable input; the context can cancel the search
// between candidates.
func (t *Tuner) ComputeOptimalRetention(ctx context.Context, hs Histories) (float64, error) {
	if len(hs) == 0 {
		return 0, ErrEmptyHistories
	}

	data := formatHistories(hs)
	if countLabeled(data) < t.minReviews {
		return 0, ErrInsufficientData
	}

	dists := computeQualityDists(data)

	bestRetention := t.retentions[0]
	bestCost := math.Inf(1)

	for _, target := range t.retentions {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		cost := simulateLoad(target, t.base, dists)
		if cost < bestCost {
			bestCost = cost
			bestRetention = target
		}
	}

	return bestRetention, nil
}

// qualityDists holds empirical quality distributions: for the first review
// of a card, for later successful recalls (quality >= 3), and for later
// failures (quality <= 2). Each array holds per-quality probabilities.
type qualityDists struct {
	first   [6]float64
	success [6]float64
	failure [6]float64
}

// computeQualityDists derives the three distributions from the dataset,
// falling back to uniform distributions over the relevant qualities when a
// bucket has no observations.
func computeQualityDists(data map[string][]sample) qualityDists {
	var first, success, failure [6]float64
	var nFirst, nSuccess, nFailure float64

	for _, samples := range data {
		for i, smp := range samples {
			switch {
			case i == 0:
				first[smp.quality]++
				nFirst++
			case smp.label == 1:
				success[smp.quality]++
				nSuccess++
			default:
				failure[smp.quality]++
				nFailure++
			}
		}
	}

	d := qualityDists{}
	d.first = normalizeOrUniform(first, nFirst, amr.Blackout, amr.Perfect)
	d.success = normalizeOrUniform(success, nSuccess, amr.Difficult, amr.Perfect)
	d.failure = normalizeOrUniform(failure, nFailure, amr.Blackout, amr.Familiar)
	return d
}

// normalizeOrUniform converts counts to probabilities, or spreads uniform
// mass over [lo, hi] when there are no observations.
func normalizeOrUniform(counts [6]float64, total float64, lo, hi amr.Quality) [6]float64 {
	var out [6]float64
	if total == 0 {
		p := 1.0 / float64(hi-lo+1)
		for q := lo; q <= hi; q++ {
			out[q] = p
		}
		return out
	}
	for q := range counts {
		out[q] = counts[q] / total
	}
	return out
}

// pickQuality draws a quality from the given distribution.
func pickQuality(rng *rand.Rand, dist [6]float64) amr.Quality {
	p := rng.Float64()
	acc := 0.0
	for q := amr.Blackout; q <= amr.Perfect; q++ {
		acc += dist[q]
		if p < acc {
			return q
		}
	}
	return amr.Perfect
}

// simulateLoad runs a Monte Carlo simulation estimating reviews per retained
// card over one year under the given retention target. Each simulated card
// is reviewed exactly when it falls due; recall succeeds with the retention
// the scheduler itself predicts at that moment.
func simulateLoad(target float64, base amr.Config, dists qualityDists) float64 {
	const numCards = 500

	cfg := base
	cfg.RetentionTarget = target
	s, err := amr.NewScheduler(cfg)
	if err != nil {
		return math.Inf(1)
	}

	rng := rand.New(rand.NewSource(42))

	startDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var totalReviews float64

	for i := 0; i < numCards; i++ {
		card := amr.NewCard("sim")
		now := startDate
		isFirst := true

		for !now.After(endDate) {
			var q amr.Quality
			if isFirst {
				q = pickQuality(rng, dists.first)
				isFirst = false
			} else if r := s.Retention(card, now); rng.Float64() < r {
				q = pickQuality(rng, dists.success)
			} else {
				q = pickQuality(rng, dists.failure)
			}

			totalReviews++
			card, _ = s.ApplyReview(card, q, now)
			now = *card.NextReview
		}
	}

	return totalReviews / (target * numCards)
}
