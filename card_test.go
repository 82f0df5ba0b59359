package amr

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewCard(t *testing.T) {
	c := NewCard("c-42")
	if c.CardID != "c-42" {
		t.Errorf("CardID = %q, want c-42", c.CardID)
	}
	assertFloat(t, "Strength", c.Strength, 1.0)
	if c.Box != 1 {
		t.Errorf("Box = %d, want 1", c.Box)
	}
	if c.LastReview != nil {
		t.Errorf("LastReview = %v, want nil", c.LastReview)
	}
	if c.NextReview != nil {
		t.Errorf("NextReview = %v, want nil", c.NextReview)
	}
	if c.History == nil || len(c.History) != 0 {
		t.Errorf("History = %v, want empty", c.History)
	}
}

func TestCardClone(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	next := now.Add(12 * time.Hour)
	c := Card{
		CardID:     "c-1",
		Strength:   2.5,
		Box:        3,
		LastReview: &now,
		NextReview: &next,
		History:    []ReviewEvent{{Time: now, Quality: Hesitant, OldStrength: 2.0, OldBox: 2, NewStrength: 2.5, NewBox: 3}},
	}

	cloned := c.clone()

	// Values equal.
	if cloned.CardID != c.CardID || cloned.Strength != c.Strength || cloned.Box != c.Box {
		t.Error("clone value mismatch")
	}
	if !cloned.LastReview.Equal(*c.LastReview) || !cloned.NextReview.Equal(*c.NextReview) {
		t.Error("clone timestamp mismatch")
	}
	if len(cloned.History) != 1 {
		t.Fatalf("clone history length = %d, want 1", len(cloned.History))
	}

	// Pointers and backing array independent.
	*cloned.LastReview = now.Add(time.Hour)
	if !c.LastReview.Equal(now) {
		t.Error("clone LastReview pointer not independent")
	}
	cloned.History[0].Quality = Blackout
	if c.History[0].Quality != Hesitant {
		t.Error("clone History backing array not independent")
	}
	cloned.History = append(cloned.History, ReviewEvent{})
	if len(c.History) != 1 {
		t.Error("append to clone grew original history")
	}
}

func TestCardCloneNilFields(t *testing.T) {
	c := Card{CardID: "c-1", Strength: 1.0, Box: 1}
	cloned := c.clone()
	if cloned.LastReview != nil || cloned.NextReview != nil || cloned.History != nil {
		t.Error("clone should preserve nil fields")
	}
}

func TestCardJSONRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 500000000, time.UTC)
	next := now.Add(12 * time.Hour)
	c := Card{
		CardID:     "c-42",
		Strength:   1.5,
		Box:        2,
		LastReview: &now,
		NextReview: &next,
		History: []ReviewEvent{{
			Time:        now,
			Quality:     Perfect,
			OldStrength: 1.0,
			OldBox:      1,
			NewStrength: 1.5,
			NewBox:      2,
		}},
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Card
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.CardID != c.CardID || got.Box != c.Box {
		t.Errorf("got %+v, want %+v", got, c)
	}
	assertFloat(t, "Strength", got.Strength, c.Strength)
	if !got.LastReview.Equal(*c.LastReview) {
		t.Errorf("LastReview = %v, want %v", got.LastReview, c.LastReview)
	}
	if !got.NextReview.Equal(*c.NextReview) {
		t.Errorf("NextReview = %v, want %v", got.NextReview, c.NextReview)
	}
	if len(got.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(got.History))
	}
	if !got.History[0].Time.Equal(now) || got.History[0].Quality != Perfect {
		t.Errorf("history[0] = %+v", got.History[0])
	}
}

func TestCardJSONBoundaryShape(t *testing.T) {
	c := NewCard("c-1")
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	// Unreviewed cards serialize timestamps as null and history as [].
	for _, substr := range []string{`"last_review":null`, `"next_review":null`, `"history":[]`} {
		if !strings.Contains(s, substr) {
			t.Errorf("JSON should contain %s, got %s", substr, s)
		}
	}
}

func TestCardJSONTimestampsWithoutOffset(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	c := NewCard("c-1")
	c.LastReview = &now

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"last_review":"2025-06-15T10:30:00"`) {
		t.Errorf("timestamp should cross without zone offset, got %s", data)
	}
}

func TestCardJSONRejectsBadTimestamp(t *testing.T) {
	var c Card
	err := json.Unmarshal([]byte(`{"card_id":"x","strength":1,"box":1,"last_review":"yesterday","next_review":null,"history":[]}`), &c)
	if err == nil {
		t.Error("Unmarshal should reject malformed timestamps")
	}
}
