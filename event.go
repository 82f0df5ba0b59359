package amr

import (
	"encoding/json"
	"time"
)

// ReviewEvent records a single review in a card's audit trail. Events are
// immutable once created and are only ever appended, in chronological order.
type ReviewEvent struct {
	Time        time.Time
	Quality     Quality
	OldStrength float64
	OldBox      int
	NewStrength float64
	NewBox      int
}

// eventJSON is the boundary form of a ReviewEvent; Time crosses as an
// ISO-8601 string.
type eventJSON struct {
	Time        string  `json:"time"`
	Quality     Quality `json:"quality"`
	OldStrength float64 `json:"old_strength"`
	OldBox      int     `json:"old_box"`
	NewStrength float64 `json:"new_strength"`
	NewBox      int     `json:"new_box"`
}

// MarshalJSON implements json.Marshaler.
func (e ReviewEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		Time:        FormatTimestamp(e.Time),
		Quality:     e.Quality,
		OldStrength: e.OldStrength,
		OldBox:      e.OldBox,
		NewStrength: e.NewStrength,
		NewBox:      e.NewBox,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ReviewEvent) UnmarshalJSON(data []byte) error {
	var j eventJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	t, err := ParseTimestamp(j.Time)
	if err != nil {
		return err
	}
	*e = ReviewEvent{
		Time:        t,
		Quality:     j.Quality,
		OldStrength: j.OldStrength,
		OldBox:      j.OldBox,
		NewStrength: j.NewStrength,
		NewBox:      j.NewBox,
	}
	return nil
}
