package espn

import (
	"encoding/json"
	"testing"
	"time"
)

func TestESPNTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"RFC3339", `"2026-03-07T15:00:00Z"`, time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)},
		{"no seconds", `"2026-03-07T15:00Z"`, time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)},
		{"empty keeps zero", `""`, time.Time{}},
		{"null keeps zero", `null`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ESPNTime
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if !got.Time.Equal(tt.want) {
				t.Errorf("got %v, want %v", got.Time, tt.want)
			}
		})
	}
}

func TestESPNTime_UnmarshalJSON_Garbage(t *testing.T) {
	var got ESPNTime
	if err := json.Unmarshal([]byte(`"not-a-date"`), &got); err == nil {
		t.Fatal("expected error for garbage timestamp")
	}
}
