// Package ticker holds the live-match core: mapping the loosely-typed ESPN
// feed into a closed event model, diffing each poll against the seen-events
// state, and rendering alerts.
package ticker

import (
	"strconv"
	"strings"

	"github.com/dantezy/sports-ticker/internal/espn"
)

// EventKind is the closed set of in-match event types the ticker knows
// about. Feed events that don't map to one of these are carried as
// KindUnknown: they are remembered so they never alert later, but they
// produce no output.
type EventKind string

const (
	KindGoal         EventKind = "goal"
	KindOwnGoal      EventKind = "own_goal"
	KindPenaltyGoal  EventKind = "penalty_goal"
	KindYellowCard   EventKind = "yellow_card"
	KindRedCard      EventKind = "red_card"
	KindSubstitution EventKind = "substitution"
	KindPeriod       EventKind = "period"
	KindUnknown      EventKind = "unknown"
)

// IsGoal reports whether the kind is any goal variant.
func (k EventKind) IsGoal() bool {
	return k == KindGoal || k == KindOwnGoal || k == KindPenaltyGoal
}

// MatchStatus is the match lifecycle as the ticker sees it.
type MatchStatus string

const (
	StatusUnknown    MatchStatus = ""
	StatusPre        MatchStatus = "pre"
	StatusInProgress MatchStatus = "in_progress"
	StatusHalftime   MatchStatus = "halftime"
	StatusFinal      MatchStatus = "final"
	StatusPostponed  MatchStatus = "postponed"
)

// Live reports whether the match is currently being played.
func (s MatchStatus) Live() bool {
	return s == StatusInProgress || s == StatusHalftime
}

// ParseStatus maps an ESPN status description to a MatchStatus.
func ParseStatus(description string) MatchStatus {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "halftime"):
		return StatusHalftime
	case strings.Contains(desc, "progress"):
		return StatusInProgress
	case strings.Contains(desc, "final"), strings.Contains(desc, "full time"), strings.Contains(desc, "full-time"):
		return StatusFinal
	case strings.Contains(desc, "postponed"), strings.Contains(desc, "canceled"), strings.Contains(desc, "cancelled"):
		return StatusPostponed
	case strings.Contains(desc, "scheduled"), strings.Contains(desc, "pre"), strings.Contains(desc, "delayed"):
		return StatusPre
	default:
		return StatusUnknown
	}
}

// missingPlayer is rendered when the feed carries no athlete for an event.
const missingPlayer = "Unknown"

// MatchEvent is one in-match event mapped from the feed. Immutable once
// built.
type MatchEvent struct {
	ID     string
	Kind   EventKind
	Minute int
	Clock  string
	Player string
	Team   string
}

// MapKeyEvent converts a feed key event into the typed model. Events
// without an ID fall back to their clock value so they can still be
// de-duplicated, matching the feed's own behavior for period markers.
func MapKeyEvent(e espn.KeyEvent) MatchEvent {
	id := e.ID
	if id == "" {
		id = strconv.Itoa(int(e.Clock.Value))
	}

	player := missingPlayer
	if len(e.Participants) > 0 && e.Participants[0].Athlete.DisplayName != "" {
		player = e.Participants[0].Athlete.DisplayName
	}

	clock := e.Clock.DisplayValue
	if clock == "" {
		clock = "?'"
	}

	return MatchEvent{
		ID:     id,
		Kind:   classifyEventType(e.Type.Text),
		Minute: eventMinute(e.Clock),
		Clock:  clock,
		Player: player,
		Team:   e.Team.DisplayName,
	}
}

// MapKeyEvents converts a feed key event list, preserving feed order
// (which is chronological).
func MapKeyEvents(events []espn.KeyEvent) []MatchEvent {
	out := make([]MatchEvent, 0, len(events))
	for _, e := range events {
		out = append(out, MapKeyEvent(e))
	}
	return out
}

func classifyEventType(text string) EventKind {
	switch {
	case strings.Contains(text, "Own Goal"):
		return KindOwnGoal
	case strings.Contains(text, "Penalty") && strings.Contains(text, "Goal"):
		return KindPenaltyGoal
	case strings.Contains(text, "Goal"):
		return KindGoal
	case strings.Contains(text, "Yellow"):
		return KindYellowCard
	case strings.Contains(text, "Red"):
		return KindRedCard
	case strings.Contains(text, "Substitution"):
		return KindSubstitution
	case strings.Contains(text, "Kickoff"), strings.Contains(text, "Halftime"),
		strings.Contains(text, "Start"), strings.Contains(text, "End"):
		return KindPeriod
	default:
		return KindUnknown
	}
}

// eventMinute derives the in-match minute from the event clock. The feed
// carries seconds in Value; the display string ("45'+2'") is the fallback.
func eventMinute(c espn.Clock) int {
	if c.Value > 0 {
		return int(c.Value) / 60
	}
	digits := strings.Builder{}
	for _, r := range c.DisplayValue {
		if r < '0' || r > '9' {
			break
		}
		digits.WriteRune(r)
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
