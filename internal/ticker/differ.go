package ticker

import (
	"sort"
	"time"

	"github.com/dantezy/sports-ticker/internal/config"
)

// Side is which side of a match the tracked team is on.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Outcome is the tracked team's full-time result.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
	OutcomeDraw Outcome = "DRAW"
)

// AlertKind is the type of a produced alert.
type AlertKind string

const (
	AlertGoal     AlertKind = "goal"
	AlertRedCard  AlertKind = "red_card"
	AlertKickoff  AlertKind = "kickoff"
	AlertHalftime AlertKind = "halftime"
	AlertFulltime AlertKind = "fulltime"
)

// kickoffMinuteWindow bounds how far into a match a kickoff alert may still
// fire. Joining mid-match (first poll at minute 60) should not announce a
// kickoff that happened an hour ago.
const kickoffMinuteWindow = 5

// Match is one poll's view of a match involving a tracked team, with
// enough context to format alerts. Ephemeral: lives only for the duration
// of a single invocation.
type Match struct {
	EventID     string
	Status      MatchStatus
	HomeTeam    string
	AwayTeam    string
	HomeScore   int
	AwayScore   int
	ClockMinute int
	Kickoff     time.Time
	League      string
	TrackedSide Side
	Team        config.TrackedTeam
	Events      []MatchEvent
}

// Outcome computes the tracked team's result from the current score.
func (m Match) Outcome() Outcome {
	ours, theirs := m.HomeScore, m.AwayScore
	if m.TrackedSide == SideAway {
		ours, theirs = theirs, ours
	}
	switch {
	case ours > theirs:
		return OutcomeWin
	case ours < theirs:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// tracked reports whether an event team name refers to the tracked team.
func (m Match) tracked(eventTeam string) bool {
	return containsFold(eventTeam, m.Team.Name)
}

// AlertRecord is one alert produced by the differ. Immutable once created;
// Format renders it to text.
type AlertRecord struct {
	Kind      AlertKind
	EventKind EventKind
	Emoji     string
	TeamEmoji string
	Team      string
	Minute    int
	Clock     string
	Player    string
	EventTeam string
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
	Outcome   Outcome
	League    string
	Kickoff   time.Time
}

// SeenSet tracks which event IDs have already been reported for a match.
type SeenSet map[string]struct{}

// NewSeenSet builds a set from a stored ID list.
func NewSeenSet(ids []string) SeenSet {
	s := make(SeenSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s SeenSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s SeenSet) Add(id string) {
	s[id] = struct{}{}
}

// IDs returns the set contents sorted, for stable persistence.
func (s SeenSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s SeenSet) clone() SeenSet {
	out := make(SeenSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Diff compares the current poll of a match against what was previously
// seen and returns the new alerts plus the updated seen set. The input set
// is not mutated.
//
// Every current event ID enters the updated set whether or not its alert
// type is enabled, so toggling a preference mid-match never resurfaces old
// events. Status transitions are compared endpoint to endpoint: a poll that
// skipped straight from pre to halftime still fires both the kickoff and
// the halftime alert.
func Diff(prev SeenSet, prevStatus MatchStatus, m Match, prefs config.AlertPreferences) ([]AlertRecord, SeenSet) {
	updated := prev.clone()
	var alerts []AlertRecord

	// A known pre status last poll means the kickoff happened since then,
	// however far the clock has run. The minute window only guards cold
	// starts, where "first sight mid-match" must not announce a kickoff.
	kickoffDue := prevStatus == StatusPre ||
		(prevStatus == StatusUnknown && m.ClockMinute <= kickoffMinuteWindow)
	if prefs.Kickoff && m.Status.Live() && kickoffDue {
		alerts = append(alerts, statusAlert(AlertKickoff, m, 0))
	}

	for _, ev := range m.Events {
		if updated.Has(ev.ID) {
			continue
		}
		updated.Add(ev.ID)

		switch {
		case ev.Kind.IsGoal() && prefs.Goals:
			alerts = append(alerts, eventAlert(AlertGoal, m, ev))
		case ev.Kind == KindRedCard && prefs.RedCards:
			alerts = append(alerts, eventAlert(AlertRedCard, m, ev))
		default:
			// Recorded as seen, nothing to say. Yellows, subs, period
			// markers and unknown kinds all land here.
		}
	}

	if prefs.Halftime && m.Status == StatusHalftime && prevStatus != StatusHalftime {
		alerts = append(alerts, statusAlert(AlertHalftime, m, m.ClockMinute))
	}

	// Full time requires a previously observed non-final status: the first
	// ever sighting of an already-finished match is history, not news.
	if prefs.Fulltime && m.Status == StatusFinal &&
		prevStatus != StatusFinal && prevStatus != StatusUnknown {
		a := statusAlert(AlertFulltime, m, m.ClockMinute)
		a.Outcome = m.Outcome()
		a.Emoji = outcomeEmoji(a.Outcome)
		alerts = append(alerts, a)
	}

	return alerts, updated
}

func eventAlert(kind AlertKind, m Match, ev MatchEvent) AlertRecord {
	a := AlertRecord{
		Kind:      kind,
		EventKind: ev.Kind,
		TeamEmoji: m.Team.EmojiOrDefault(),
		Team:      m.Team.Name,
		Minute:    ev.Minute,
		Clock:     ev.Clock,
		Player:    ev.Player,
		EventTeam: ev.Team,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
		League:    m.League,
		Kickoff:   m.Kickoff,
	}
	switch kind {
	case AlertGoal:
		if m.tracked(ev.Team) {
			a.Emoji = "🎉"
		} else {
			a.Emoji = "😬"
		}
	case AlertRedCard:
		if m.tracked(ev.Team) {
			a.Emoji = "😱"
		} else {
			a.Emoji = "😈"
		}
	}
	return a
}

func statusAlert(kind AlertKind, m Match, minute int) AlertRecord {
	return AlertRecord{
		Kind:      kind,
		TeamEmoji: m.Team.EmojiOrDefault(),
		Team:      m.Team.Name,
		Minute:    minute,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
		League:    m.League,
		Kickoff:   m.Kickoff,
	}
}

func outcomeEmoji(o Outcome) string {
	switch o {
	case OutcomeWin:
		return "🎉✅"
	case OutcomeLoss:
		return "😢❌"
	default:
		return "🤝"
	}
}

// SortAlerts orders alerts deterministically: match kickoff time first,
// then in-match minute. Stable so same-minute alerts keep emission order.
func SortAlerts(alerts []AlertRecord) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if !alerts[i].Kickoff.Equal(alerts[j].Kickoff) {
			return alerts[i].Kickoff.Before(alerts[j].Kickoff)
		}
		return alerts[i].Minute < alerts[j].Minute
	})
}
