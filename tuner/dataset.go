package tuner

import (
	"sort"
	"time"

	"github.com/adaptive-recall/amr"
)

// Histories maps card IDs to the review events of each card, as recorded in
// the cards' audit trails.
type Histories map[string][]amr.ReviewEvent

// sample is an internal representation of a single review prepared for
// calibration.
type sample struct {
	quality     amr.Quality
	elapsedDays float64   // days since the previous review (0 for the first)
	label       float64   // 0 when recall failed (quality <= 2), 1 otherwise
	reviewTime  time.Time // original review timestamp (for replay)
}

// formatHistories sorts each card's events by time and derives elapsed days
// and a binary recall label per review. Events with an invalid quality are
// dropped.
func formatHistories(hs Histories) map[string][]sample {
	if len(hs) == 0 {
		return nil
	}

	result := make(map[string][]sample, len(hs))
	for cardID, events := range hs {
		sorted := make([]amr.ReviewEvent, len(events))
		copy(sorted, events)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Time.Before(sorted[j].Time)
		})

		samples := make([]sample, 0, len(sorted))
		for _, e := range sorted {
			if !e.Quality.IsValid() {
				continue
			}
			var elapsed float64
			if n := len(samples); n > 0 {
				elapsed = e.Time.Sub(samples[n-1].reviewTime).Hours() / 24.0
			}

			label := 1.0
			if e.Quality <= amr.Familiar {
				label = 0.0
			}

			samples = append(samples, sample{
				quality:     e.Quality,
				elapsedDays: elapsed,
				label:       label,
				reviewTime:  e.Time,
			})
		}
		if len(samples) > 0 {
			result[cardID] = samples
		}
	}

	return result
}

// countLabeled counts reviews that follow an earlier review of the same
// card. Only those carry a retention signal; the first review of a card
// predicts 0 by definition.
func countLabeled(data map[string][]sample) int {
	count := 0
	for _, samples := range data {
		if len(samples) > 1 {
			count += len(samples) - 1
		}
	}
	return count
}

// sortedCardIDs returns the card IDs of data in lexical order, for
// deterministic iteration.
func sortedCardIDs(data map[string][]sample) []string {
	ids := make([]string, 0, len(data))
	for id := range data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
