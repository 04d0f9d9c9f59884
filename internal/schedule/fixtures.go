// Package schedule turns the ESPN team schedule feed into upcoming
// fixtures and, from those, into cron schedule descriptors a host scheduler
// can register. Nothing here executes anything: the output is data.
package schedule

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/dantezy/sports-ticker/internal/config"
	"github.com/dantezy/sports-ticker/internal/espn"
)

// DefaultDays is the default look-ahead window for fixture listings.
const DefaultDays = 14

// Fixture is one upcoming match for a tracked team, flattened for display
// and JSON export.
type Fixture struct {
	EventID       string    `json:"event_id"`
	Date          time.Time `json:"date"`
	Opponent      string    `json:"opponent"`
	OpponentShort string    `json:"opponent_short"`
	IsHome        bool      `json:"is_home"`
	Competition   string    `json:"competition"`
	League        string    `json:"league"`
	Sport         string    `json:"sport"`
	Venue         string    `json:"venue,omitempty"`

	TeamName   string `json:"team_name"`
	TeamShort  string `json:"team_short"`
	TeamEmoji  string `json:"team_emoji"`
	TeamESPNID string `json:"team_espn_id"`
}

// TeamFixtures fetches a team's fixtures across its configured leagues
// within the next `days` days, sorted by kickoff. A league that fails to
// fetch is logged and skipped.
func TeamFixtures(ctx context.Context, client *espn.Client, team config.TrackedTeam, days int, now time.Time) ([]Fixture, error) {
	if team.ESPNID == "" {
		return nil, nil
	}
	if days <= 0 {
		days = DefaultDays
	}
	horizon := now.AddDate(0, 0, days)

	var fixtures []Fixture
	failed := 0
	for _, league := range team.Leagues() {
		events, err := client.TeamSchedule(ctx, team.SportOrDefault(), league, team.ESPNID)
		if err != nil {
			if ctx.Err() != nil {
				return fixtures, ctx.Err()
			}
			log.Printf("[schedule] %s/%s: %v", team.Name, league, err)
			failed++
			continue
		}
		for _, event := range events {
			f, ok := eventFixture(event, team, league)
			if !ok {
				continue
			}
			if !f.Date.After(now) || f.Date.After(horizon) {
				continue
			}
			fixtures = append(fixtures, f)
		}
	}
	if failed == len(team.Leagues()) && failed > 0 {
		return nil, fmt.Errorf("all leagues failed for %s", team.Name)
	}

	sort.Slice(fixtures, func(i, j int) bool { return fixtures[i].Date.Before(fixtures[j].Date) })
	return fixtures, nil
}

// AllFixtures collects fixtures for every enabled team, optionally filtered
// by a team name substring, merged and sorted by date. A team that fails
// entirely is logged and skipped so one dead feed doesn't hide the rest.
func AllFixtures(ctx context.Context, client *espn.Client, cfg *config.Config, days int, teamFilter string, now time.Time) []Fixture {
	var all []Fixture
	for _, team := range cfg.EnabledTeams() {
		if team.ESPNID == "" {
			continue
		}
		if teamFilter != "" {
			needle := strings.ToLower(teamFilter)
			if !strings.Contains(strings.ToLower(team.Name), needle) &&
				!strings.Contains(strings.ToLower(team.ShortName), needle) {
				continue
			}
		}
		fixtures, err := TeamFixtures(ctx, client, team, days, now)
		if err != nil {
			log.Printf("[schedule] %s: %v", team.Name, err)
			continue
		}
		all = append(all, fixtures...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	return all
}

// eventFixture maps a schedule event into a Fixture. Events the feed
// delivers without both competitors or a date are dropped.
func eventFixture(event espn.Event, team config.TrackedTeam, league string) (Fixture, bool) {
	if len(event.Competitions) == 0 {
		return Fixture{}, false
	}
	comp := event.Competitions[0]
	if len(comp.Competitors) < 2 {
		return Fixture{}, false
	}

	date := event.Date.Time
	if date.IsZero() {
		date = comp.Date.Time
	}
	if date.IsZero() {
		return Fixture{}, false
	}

	f := Fixture{
		EventID:     event.ID,
		Date:        date,
		Competition: espn.LeagueName(league),
		League:      league,
		Sport:       team.SportOrDefault(),
		Venue:       comp.Venue.FullName,
		TeamName:    team.Name,
		TeamShort:   team.Short(),
		TeamEmoji:   team.EmojiOrDefault(),
		TeamESPNID:  team.ESPNID,
	}

	ourSide := false
	for _, c := range comp.Competitors {
		if c.Team.ID == team.ESPNID {
			ourSide = true
			f.IsHome = c.HomeAway == "home"
		} else {
			f.Opponent = c.Team.DisplayName
			f.OpponentShort = c.Team.ShortDisplayName
		}
	}
	if !ourSide || f.Opponent == "" {
		return Fixture{}, false
	}
	return f, true
}

// FormatFixtures renders a team's fixture list. Compact mode is one line
// per fixture.
func FormatFixtures(team config.TrackedTeam, fixtures []Fixture, compact bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s **%s** - Upcoming Fixtures\n", team.EmojiOrDefault(), team.Name)

	if len(fixtures) == 0 {
		b.WriteString("\nNo fixtures found in the next period.")
		return b.String()
	}

	for _, f := range fixtures {
		loc := "vs"
		if !f.IsHome {
			loc = "@"
		}
		if compact {
			opp := f.OpponentShort
			if opp == "" {
				opp = f.Opponent
			}
			fmt.Fprintf(&b, "\n  %s %s %s (%s)", f.Date.Format("02/01 15:04"), loc, opp, f.Competition)
		} else {
			fmt.Fprintf(&b, "\n📅 %s\n   %s %s (%s)", f.Date.Format("Mon 02 Jan 15:04 MST"), loc, f.Opponent, f.Competition)
			if f.Venue != "" {
				fmt.Fprintf(&b, "\n   📍 %s", f.Venue)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
