package ticker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/dantezy/sports-ticker/internal/config"
	"github.com/dantezy/sports-ticker/internal/espn"
	"github.com/dantezy/sports-ticker/internal/state"
)

// Monitor runs one polling cycle: for every enabled team, find its live
// match, diff against the seen-events state, and collect alerts. Designed
// to be invoked repeatedly by an external scheduler; a single run is
// synchronous and run-to-completion.
type Monitor struct {
	cfg    *config.Config
	client *espn.Client
	store  *state.Store
}

// NewMonitor wires a monitor from its collaborators.
func NewMonitor(cfg *config.Config, client *espn.Client, store *state.Store) *Monitor {
	return &Monitor{cfg: cfg, client: client, store: store}
}

// Run executes one cycle and returns the new alerts, ordered by match
// kickoff time then in-match minute. A failure on one team is logged and
// skipped; alerts for the remaining teams are still produced. The state
// file is saved with whatever was successfully observed, including when
// the cycle is cut short by cancellation, so alerts already returned are
// never re-emitted by the next invocation.
func (m *Monitor) Run(ctx context.Context) ([]AlertRecord, error) {
	st, err := m.store.Load()
	if err != nil {
		// A corrupt state file shouldn't silence a whole match day.
		// Starting fresh re-alerts at worst; staying down alerts never.
		log.Printf("[monitor] state file unreadable, starting fresh: %v", err)
		st = state.State{}
	}

	var alerts []AlertRecord
	var runErr error
	for _, team := range m.cfg.EnabledTeams() {
		if team.ESPNID == "" {
			log.Printf("[monitor] skipping %s: no ESPN id configured", team.Name)
			continue
		}

		teamAlerts, err := m.checkTeam(ctx, team, st)
		if err != nil {
			if ctx.Err() != nil {
				runErr = ctx.Err()
				break
			}
			log.Printf("[monitor] %s: %v", team.Name, err)
			continue
		}
		alerts = append(alerts, teamAlerts...)
	}

	SortAlerts(alerts)

	if err := m.store.Save(st); err != nil {
		return alerts, fmt.Errorf("saving state: %w", err)
	}
	return alerts, runErr
}

// checkTeam polls one team's match and updates st in place.
func (m *Monitor) checkTeam(ctx context.Context, team config.TrackedTeam, st state.State) ([]AlertRecord, error) {
	found, err := m.client.FindTeamMatch(ctx, team.ESPNID, team.SportOrDefault(), team.Leagues())
	if err != nil {
		if errors.Is(err, espn.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding match: %w", err)
	}

	match, err := buildMatch(found, team)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", found.Event.ID, err)
	}

	// Key events come from the summary endpoint. Losing them degrades the
	// cycle to status-only alerts rather than failing the match.
	keyEvents, err := m.client.KeyEvents(ctx, found.Sport, found.League, match.EventID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("[monitor] %s: key events unavailable: %v", team.Name, err)
		keyEvents = nil
	}
	match.Events = MapKeyEvents(keyEvents)

	prev := st[match.EventID]
	seen := NewSeenSet(prev.EventIDs)

	alerts, updated := Diff(seen, MatchStatus(prev.Status), match, m.cfg.Alerts)

	st[match.EventID] = state.MatchState{
		Status:    string(match.Status),
		HomeScore: match.HomeScore,
		AwayScore: match.AwayScore,
		EventIDs:  updated.IDs(),
	}
	return alerts, nil
}

// buildMatch maps a scoreboard event into the typed match model. Events the
// feed delivers malformed (no competition, missing sides) are rejected here
// so classification never runs on them.
func buildMatch(found *espn.TeamMatch, team config.TrackedTeam) (Match, error) {
	event := found.Event
	if len(event.Competitions) == 0 {
		return Match{}, errors.New("no competitions in event")
	}
	comp := event.Competitions[0]
	if len(comp.Competitors) < 2 {
		return Match{}, errors.New("not enough competitors")
	}

	match := Match{
		EventID: event.ID,
		Status:  ParseStatus(event.Status.Type.Description),
		Kickoff: event.Date.Time,
		League:  espn.LeagueName(found.League),
		Team:    team,
	}
	if match.Kickoff.IsZero() {
		match.Kickoff = comp.Date.Time
	}
	match.ClockMinute = int(event.Status.Clock) / 60

	sideFound := false
	for _, c := range comp.Competitors {
		score := parseScore(c.Score)
		if c.HomeAway == "home" {
			match.HomeTeam = c.Team.DisplayName
			match.HomeScore = score
			if c.Team.ID == team.ESPNID {
				match.TrackedSide = SideHome
				sideFound = true
			}
		} else {
			match.AwayTeam = c.Team.DisplayName
			match.AwayScore = score
			if c.Team.ID == team.ESPNID {
				match.TrackedSide = SideAway
				sideFound = true
			}
		}
	}

	if match.HomeTeam == "" || match.AwayTeam == "" {
		return Match{}, errors.New("missing home or away competitor")
	}
	if !sideFound {
		return Match{}, errors.New("tracked team not on either side")
	}
	return match, nil
}

func parseScore(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
