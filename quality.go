package amr

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Quality is the caller-supplied grade for how well a review went,
// on the SM-2 style 0-5 scale.
type Quality int

const (
	Blackout  Quality = iota // Complete failure to recall.
	Wrong                    // Incorrect, but the answer was recognized.
	Familiar                 // Incorrect, yet the answer felt within reach.
	Difficult                // Correct with serious difficulty.
	Hesitant                 // Correct after hesitation.
	Perfect                  // Effortless, perfect recall.
)

var (
	qualityNames = [...]string{
		Blackout:  "Blackout",
		Wrong:     "Wrong",
		Familiar:  "Familiar",
		Difficult: "Difficult",
		Hesitant:  "Hesitant",
		Perfect:   "Perfect",
	}
	qualityByName = map[string]Quality{
		"Blackout":  Blackout,
		"Wrong":     Wrong,
		"Familiar":  Familiar,
		"Difficult": Difficult,
		"Hesitant":  Hesitant,
		"Perfect":   Perfect,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Quality(0)
	_ json.Marshaler           = Quality(0)
	_ json.Unmarshaler         = (*Quality)(nil)
	_ encoding.TextMarshaler   = Quality(0)
	_ encoding.TextUnmarshaler = (*Quality)(nil)
)

// String returns the name of the quality ("Blackout" through "Perfect").
// For invalid values it returns "Quality(n)".
func (q Quality) String() string {
	if q.IsValid() {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// IsValid reports whether q is a valid quality (Blackout through Perfect).
func (q Quality) IsValid() bool {
	return q >= Blackout && q <= Perfect
}

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	if !q.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}
	return []byte(qualityNames[q]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts a quality name ("Hesitant") or a decimal digit ("4").
func (q *Quality) UnmarshalText(text []byte) error {
	if v, ok := qualityByName[string(text)]; ok {
		*q = v
		return nil
	}
	if len(text) == 1 && text[0] >= '0' && text[0] <= '5' {
		*q = Quality(text[0] - '0')
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidQuality, text)
}

// MarshalJSON implements json.Marshaler. Quality serializes as a JSON
// number, the shape it crosses the boundary in.
func (q Quality) MarshalJSON() ([]byte, error) {
	if !q.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}
	return json.Marshal(int(q))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON number in [0, 5].
func (q *Quality) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidQuality, data)
	}
	v := Quality(n)
	if !v.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidQuality, n)
	}
	*q = v
	return nil
}
