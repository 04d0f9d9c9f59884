package espn

import (
	"strings"
	"time"
)

// ESPNTime wraps time.Time to unmarshal both full RFC3339 timestamps and
// the shorter "2006-01-02T15:04Z" strings some ESPN endpoints return.
type ESPNTime struct {
	time.Time
}

var espnTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *ESPNTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	var parseErr error
	for _, layout := range espnTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		parseErr = err
	}
	return parseErr
}
