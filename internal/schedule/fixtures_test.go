package schedule

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dantezy/sports-ticker/internal/config"
	"github.com/dantezy/sports-ticker/internal/espn"
)

func scheduleBody(events ...string) string {
	return fmt.Sprintf(`{"team":{"id":"360"},"events":[%s]}`, strings.Join(events, ","))
}

func scheduleEvent(id, date, oppID, oppName, oppShort, homeAway string) string {
	ourSide := "home"
	if homeAway == "home" {
		ourSide = "away"
	}
	return fmt.Sprintf(`{"id":%q,"date":%q,"competitions":[{
		"venue":{"fullName":"Old Trafford"},
		"competitors":[
			{"homeAway":%q,"team":{"id":"360","displayName":"Manchester United"}},
			{"homeAway":%q,"team":{"id":%q,"displayName":%q,"shortDisplayName":%q}}
		]}]}`, id, date, ourSide, homeAway, oppID, oppName, oppShort)
}

func newScheduleClient(t *testing.T, handlers map[string]string) *espn.Client {
	t.Helper()
	mux := http.NewServeMux()
	for path, body := range handlers {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return espn.NewClientWith(server.URL, 0)
}

func TestTeamFixtures_WindowAndOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	client := newScheduleClient(t, map[string]string{
		"/soccer/eng.1/teams/360/schedule": scheduleBody(
			scheduleEvent("f-past", "2026-02-20T15:00Z", "21", "West Ham United", "West Ham", "away"),
			scheduleEvent("f-late", "2026-03-10T17:30Z", "359", "Arsenal", "Arsenal", "home"),
			scheduleEvent("f-soon", "2026-03-04T15:00Z", "364", "Liverpool", "Liverpool", "home"),
			scheduleEvent("f-far", "2026-05-01T15:00Z", "363", "Chelsea", "Chelsea", "away"),
		),
	})

	team := config.TrackedTeam{
		Name: "Manchester United", ShortName: "United",
		ESPNID: "360", ESPNLeagues: []string{"eng.1"}, Enabled: true,
	}

	fixtures, err := TeamFixtures(context.Background(), client, team, 14, now)
	if err != nil {
		t.Fatalf("TeamFixtures failed: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures in window, got %d: %+v", len(fixtures), fixtures)
	}
	if fixtures[0].EventID != "f-soon" || fixtures[1].EventID != "f-late" {
		t.Errorf("fixtures out of order: %s, %s", fixtures[0].EventID, fixtures[1].EventID)
	}
	if fixtures[0].IsHome {
		t.Error("f-soon should be an away fixture")
	}
	if fixtures[0].Opponent != "Liverpool" {
		t.Errorf("opponent = %q", fixtures[0].Opponent)
	}
	if fixtures[1].Competition != "Premier League" {
		t.Errorf("competition = %q", fixtures[1].Competition)
	}
}

func TestAllFixtures_TeamFilterAndMergeOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	client := newScheduleClient(t, map[string]string{
		"/soccer/eng.1/teams/360/schedule": scheduleBody(
			scheduleEvent("f-b", "2026-03-08T15:00Z", "359", "Arsenal", "Arsenal", "away"),
		),
		"/soccer/esp.1/teams/86/schedule": `{"team":{"id":"86"},"events":[{
			"id":"f-a","date":"2026-03-05T20:00Z","competitions":[{"competitors":[
				{"homeAway":"home","team":{"id":"86","displayName":"Real Madrid"}},
				{"homeAway":"away","team":{"id":"83","displayName":"Barcelona","shortDisplayName":"Barcelona"}}
			]}]}]}`,
	})

	cfg := &config.Config{
		Teams: []config.TrackedTeam{
			{Name: "Manchester United", ESPNID: "360", ESPNLeagues: []string{"eng.1"}, Enabled: true},
			{Name: "Real Madrid", ESPNID: "86", Sport: "soccer", ESPNLeagues: []string{"esp.1"}, Enabled: true},
		},
		Alerts: config.DefaultAlertPreferences(),
	}

	all := AllFixtures(context.Background(), client, cfg, 14, "", now)
	if len(all) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(all))
	}
	if all[0].EventID != "f-a" || all[1].EventID != "f-b" {
		t.Errorf("merged fixtures out of date order: %s, %s", all[0].EventID, all[1].EventID)
	}

	filtered := AllFixtures(context.Background(), client, cfg, 14, "madrid", now)
	if len(filtered) != 1 || filtered[0].TeamName != "Real Madrid" {
		t.Fatalf("unexpected filter result: %+v", filtered)
	}
}

func TestFormatFixtures(t *testing.T) {
	team := config.TrackedTeam{Name: "Manchester United", Emoji: "🔴", Enabled: true}
	fixtures := []Fixture{{
		Date:          time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC),
		Opponent:      "Liverpool",
		OpponentShort: "Liverpool",
		Competition:   "Premier League",
		Venue:         "Anfield",
	}}

	full := FormatFixtures(team, fixtures, false)
	for _, want := range []string{"Manchester United", "Liverpool", "Premier League", "Anfield", "@"} {
		if !strings.Contains(full, want) {
			t.Errorf("full format missing %q:\n%s", want, full)
		}
	}

	compact := FormatFixtures(team, fixtures, true)
	if !strings.Contains(compact, "04/03 15:00 @ Liverpool (Premier League)") {
		t.Errorf("unexpected compact line:\n%s", compact)
	}

	empty := FormatFixtures(team, nil, false)
	if !strings.Contains(empty, "No fixtures") {
		t.Errorf("unexpected empty output:\n%s", empty)
	}
}
