// Package amr implements the Adaptive Memory Retention spaced repetition
// scheduling algorithm.
//
// amr provides a pure-Go Scheduler that predicts present recall probability
// from an exponential forgetting curve, computes when a card should next be
// reviewed, and applies graded review outcomes to a card's memory strength
// and Leitner box. A Tuner (in the amr/tuner subpackage) calibrates the
// scheduling constants from historical review events.
//
// All operations take the current time as an explicit argument, so behavior
// is deterministic and testable without the wall clock.
//
// Basic usage:
//
//	s, err := amr.NewScheduler(amr.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	card := amr.NewCard("c-1")
//	card, err = s.ApplyReview(card, amr.Hesitant, time.Now().UTC())
package amr
