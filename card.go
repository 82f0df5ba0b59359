package amr

import (
	"encoding/json"
	"time"
)

// Card represents a flashcard's memory state.
//
// Strength is the exponential decay time constant in days; it is always
// positive. Box is the Leitner mastery tier in [1, BoxCount]. LastReview and
// NextReview are nil before the first review. History is the append-only
// audit trail of every review applied to the card.
type Card struct {
	CardID     string        `json:"card_id"`
	Strength   float64       `json:"strength"`
	Box        int           `json:"box"`
	LastReview *time.Time    `json:"last_review"`
	NextReview *time.Time    `json:"next_review"`
	History    []ReviewEvent `json:"history"`
}

// NewCard creates an unreviewed card with the given ID: default strength,
// box 1, no history. ID assignment is the caller's concern; the scheduler
// only carries it through.
func NewCard(id string) Card {
	return Card{
		CardID:   id,
		Strength: DefaultStrength,
		Box:      1,
		History:  []ReviewEvent{},
	}
}

// clone returns a deep copy of the card. Pointer fields and the history
// slice are copied so the original is never aliased.
func (c Card) clone() Card {
	out := c
	if c.LastReview != nil {
		v := *c.LastReview
		out.LastReview = &v
	}
	if c.NextReview != nil {
		v := *c.NextReview
		out.NextReview = &v
	}
	if c.History != nil {
		out.History = make([]ReviewEvent, len(c.History))
		copy(out.History, c.History)
	}
	return out
}

// cardJSON is the boundary form of a Card; timestamps cross as ISO-8601
// strings, absent values as null.
type cardJSON struct {
	CardID     string        `json:"card_id"`
	Strength   float64       `json:"strength"`
	Box        int           `json:"box"`
	LastReview *string       `json:"last_review"`
	NextReview *string       `json:"next_review"`
	History    []ReviewEvent `json:"history"`
}

// MarshalJSON implements json.Marshaler.
func (c Card) MarshalJSON() ([]byte, error) {
	j := cardJSON{
		CardID:   c.CardID,
		Strength: c.Strength,
		Box:      c.Box,
		History:  c.History,
	}
	if j.History == nil {
		j.History = []ReviewEvent{}
	}
	if c.LastReview != nil {
		s := FormatTimestamp(*c.LastReview)
		j.LastReview = &s
	}
	if c.NextReview != nil {
		s := FormatTimestamp(*c.NextReview)
		j.NextReview = &s
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Card) UnmarshalJSON(data []byte) error {
	var j cardJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	out := Card{
		CardID:   j.CardID,
		Strength: j.Strength,
		Box:      j.Box,
		History:  j.History,
	}
	if out.History == nil {
		out.History = []ReviewEvent{}
	}
	if j.LastReview != nil {
		t, err := ParseTimestamp(*j.LastReview)
		if err != nil {
			return err
		}
		out.LastReview = &t
	}
	if j.NextReview != nil {
		t, err := ParseTimestamp(*j.NextReview)
		if err != nil {
			return err
		}
		out.NextReview = &t
	}
	*c = out
	return nil
}
