package amr

import (
	"encoding/json"
	"fmt"
	"time"
)

// Scheduler applies the AMR model: it predicts recall probability, schedules
// the next review against the retention target, and applies graded review
// outcomes to cards. A Scheduler is stateless apart from its configuration
// and is safe for concurrent use.
type Scheduler struct {
	model model
}

// NewScheduler creates a Scheduler from the given config.
// Zero-value fields are filled with defaults; out-of-bounds values return an
// error wrapping ErrInvalidConfig.
func NewScheduler(cfg Config) (*Scheduler, error) {
	resolved := cfg.withDefaults()
	if err := resolved.validate(); err != nil {
		return nil, err
	}
	return &Scheduler{model: newModel(resolved)}, nil
}

// Config returns the resolved configuration the scheduler runs with.
func (s *Scheduler) Config() Config {
	return s.model.cfg
}

// PredictRetention returns the probability of recall for a card with the
// given strength at time now. A nil lastReview means the card has never been
// reviewed and predicts 0. A lastReview after now predicts above 1; the
// result is not capped.
func (s *Scheduler) PredictRetention(strength float64, lastReview *time.Time, now time.Time) float64 {
	if lastReview == nil {
		return 0.0
	}
	elapsed := now.Sub(*lastReview).Hours() / 24.0
	return s.model.retention(elapsed, strength)
}

// Retention returns the predicted recall probability of the card at time now.
func (s *Scheduler) Retention(card Card, now time.Time) float64 {
	return s.PredictRetention(card.Strength, card.LastReview, now)
}

// NextReviewAt returns when a card of the given strength should next be
// reviewed: the moment predicted retention decays to the retention target,
// never sooner than MinInterval days from now.
func (s *Scheduler) NextReviewAt(strength float64, now time.Time) time.Time {
	return now.Add(daysToDuration(s.model.interval(strength)))
}

// ApplyReview processes a review of the card graded q at time now.
// It returns the updated card with one ReviewEvent appended to its history;
// the input card is not mutated. An out-of-range quality returns
// ErrInvalidQuality and no partial update. The single now value is used for
// the review timestamp, the history entry, and the scheduling base.
func (s *Scheduler) ApplyReview(card Card, q Quality, now time.Time) (Card, error) {
	if !q.IsValid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}

	c := card.clone()

	newStrength := s.model.nextStrength(c.Strength, q)
	newBox := s.model.nextBox(c.Box, q)

	event := ReviewEvent{
		Time:        now,
		Quality:     q,
		OldStrength: c.Strength,
		OldBox:      c.Box,
		NewStrength: newStrength,
		NewBox:      newBox,
	}

	c.Strength = newStrength
	c.Box = newBox
	c.LastReview = &now
	next := s.NextReviewAt(newStrength, now)
	c.NextReview = &next
	c.History = append(c.History, event)

	return c, nil
}

// PreviewCard returns the result of reviewing the card with each possible
// quality, without committing any of them.
func (s *Scheduler) PreviewCard(card Card, now time.Time) map[Quality]Card {
	result := make(map[Quality]Card, int(Perfect)+1)
	for q := Blackout; q <= Perfect; q++ {
		c, _ := s.ApplyReview(card, q, now)
		result[q] = c
	}
	return result
}

// RebuildCard replays the source card's audit trail to reconstruct its
// scheduling state from scratch under this scheduler's configuration.
// Returns ErrCardIDMismatch if the source card's ID does not match id.
// Events are applied in recorded order with their recorded timestamps, so
// the rebuilt strength and box may differ from the old/new values stored in
// the events when the configuration has changed.
func (s *Scheduler) RebuildCard(id string, source Card) (Card, error) {
	if source.CardID != id {
		return Card{}, fmt.Errorf("%w: card %q, trail %q", ErrCardIDMismatch, id, source.CardID)
	}
	c := NewCard(id)
	for _, e := range source.History {
		var err error
		c, err = s.ApplyReview(c, e.Quality, e.Time)
		if err != nil {
			return Card{}, err
		}
	}
	return c, nil
}

// MarshalJSON implements json.Marshaler. A Scheduler serializes as its
// resolved Config.
func (s *Scheduler) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.model.cfg)
}

// UnmarshalJSON implements json.Unmarshaler.
// It rebuilds the precomputed model from the serialized config.
func (s *Scheduler) UnmarshalJSON(data []byte) error {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	rebuilt, err := NewScheduler(cfg)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

// daysToDuration converts a fractional day count to a time.Duration.
func daysToDuration(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}
