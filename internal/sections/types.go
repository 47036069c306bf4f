package sections

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Text is a display string that also accepts JSON numbers and booleans, so
// documents may write "year": 2024 or "value": "9.8" interchangeably.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*t = Text(n.String())
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*t = Text(strconv.FormatBool(v))
	return nil
}

// String returns the text.
func (t Text) String() string { return string(t) }

// Stat is a label/value pair shown in card footers.
type Stat struct {
	Label string `json:"label"`
	Value Text   `json:"value"`
	// Color is a Tailwind palette name ("red", "green"); empty means black.
	Color string `json:"color,omitempty"`
}

// Link is an outbound link with an optional icon name.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

type statView struct {
	Label      string
	Value      string
	ValueClass string
	Divider    bool
}

func statViews(stats []Stat) []statView {
	out := make([]statView, len(stats))
	for i, s := range stats {
		class := "text-black"
		if s.Color != "" {
			class = "text-" + s.Color + "-500"
		}
		out[i] = statView{
			Label:      s.Label,
			Value:      s.Value.String(),
			ValueClass: class,
			Divider:    i < len(stats)-1,
		}
	}
	return out
}
