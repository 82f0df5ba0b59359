package tuner

import (
	"math"

	"github.com/adaptive-recall/amr"
)

const bceClamp = 1e-7

// bceLoss computes the binary cross-entropy loss: -[y*ln(p) + (1-y)*ln(1-p)].
// rPred is clamped to [bceClamp, 1-bceClamp] to avoid log(0).
func bceLoss(rPred, y float64) float64 {
	p := math.Max(bceClamp, math.Min(rPred, 1-bceClamp))
	return -(y*math.Log(p) + (1-y)*math.Log(1-p))
}

// replayLoss computes the average BCE loss over all labeled reviews.
// It creates a Scheduler from cfg and replays each card's history, comparing
// the retention predicted just before each review against the recall label.
// Returns +Inf for an unusable config and 0 when nothing contributes.
func replayLoss(cfg amr.Config, data map[string][]sample) float64 {
	s, err := amr.NewScheduler(cfg)
	if err != nil {
		return math.Inf(1)
	}

	var totalLoss float64
	var count int

	for _, cardID := range sortedCardIDs(data) {
		card := amr.NewCard(cardID)

		for _, smp := range data[cardID] {
			// Retention predicted BEFORE this review.
			rPred := s.Retention(card, smp.reviewTime)

			// Only reviews with a prior review contribute.
			if card.LastReview != nil {
				totalLoss += bceLoss(rPred, smp.label)
				count++
			}

			next, err := s.ApplyReview(card, smp.quality, smp.reviewTime)
			if err != nil {
				continue
			}
			card = next
		}
	}

	if count == 0 {
		return 0
	}
	return totalLoss / float64(count)
}

// scaledConfig returns cfg with every quality multiplier scaled by the given
// factor.
func scaledConfig(cfg amr.Config, scale float64) amr.Config {
	out := cfg
	if out.Multipliers == [6]float64{} {
		out.Multipliers = amr.DefaultMultipliers
	}
	for q := range out.Multipliers {
		out.Multipliers[q] *= scale
	}
	return out
}
