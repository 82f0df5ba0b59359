// Package tuner calibrates AMR scheduling constants from historical review
// events.
//
// It provides two main capabilities:
//
//   - [Tuner.ComputeOptimalScale] grid-searches a scale factor for the
//     quality multiplier table by replaying each card's review history and
//     minimizing binary cross-entropy between predicted retention and
//     observed recall.
//
//   - [Tuner.ComputeOptimalRetention] finds the retention target that
//     minimizes reviews per retained card via Monte Carlo simulation.
//
// # Usage
//
//	tn := tuner.NewTuner(tuner.TunerConfig{})
//	scale, err := tn.ComputeOptimalScale(ctx, histories)
//	target, err := tn.ComputeOptimalRetention(ctx, histories)
//
// # Data Requirements
//
// Both calibrations need enough reviews that follow an earlier review of the
// same card (at least MinReviews, default 100) — the first review of a card
// carries no retention signal.
package tuner
