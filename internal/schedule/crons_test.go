package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/robfig/cron"
)

func testFixture(kickoff time.Time) Fixture {
	return Fixture{
		EventID:       "606123",
		Date:          kickoff,
		Opponent:      "West Ham United",
		OpponentShort: "West Ham",
		IsHome:        true,
		Competition:   "Premier League",
		League:        "eng.1",
		Sport:         "soccer",
		Venue:         "Old Trafford",
		TeamName:      "Manchester United",
		TeamShort:     "United",
		TeamEmoji:     "🔴",
		TeamESPNID:    "360",
	}
}

func TestFixtureCrons_ThreeJobsForFutureFixture(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	kickoff := time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)

	jobs, err := FixtureCrons(testFixture(kickoff), now, Options{})
	if err != nil {
		t.Fatalf("FixtureCrons failed: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}

	types := map[string]CronJob{}
	for _, job := range jobs {
		types[job.Metadata.Type] = job
	}

	reminder, ok := types["reminder"]
	if !ok {
		t.Fatal("missing reminder job")
	}
	// 30 minutes before a 15:00 kickoff
	if reminder.Schedule != "30 14 7 3 *" {
		t.Errorf("reminder schedule = %q", reminder.Schedule)
	}
	if !reminder.OneShot || !reminder.Enabled {
		t.Errorf("reminder flags = %+v", reminder)
	}

	start, ok := types["ticker_start"]
	if !ok {
		t.Fatal("missing ticker_start job")
	}
	if start.Schedule != "55 14 7 3 *" {
		t.Errorf("ticker_start schedule = %q", start.Schedule)
	}
	if start.Metadata.EndTime == nil || !start.Metadata.EndTime.Equal(kickoff.Add(DefaultTickerDuration)) {
		t.Errorf("ticker_start end time = %v", start.Metadata.EndTime)
	}

	tkr, ok := types["ticker"]
	if !ok {
		t.Fatal("missing ticker job")
	}
	if tkr.Schedule != "*/2 * * * *" {
		t.Errorf("ticker schedule = %q", tkr.Schedule)
	}
	if tkr.Enabled {
		t.Error("ticker should start disabled")
	}
	if tkr.Window == nil || !tkr.Window.Start.Equal(kickoff.Add(-DefaultTickerLead)) {
		t.Errorf("ticker window = %+v", tkr.Window)
	}
}

func TestFixtureCrons_TimezoneRendersLocalWallClock(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	// 15:00 UTC is 00:00 the next day in Tokyo.
	kickoff := time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)

	jobs, err := FixtureCrons(testFixture(kickoff), now, Options{Timezone: "Asia/Tokyo"})
	if err != nil {
		t.Fatalf("FixtureCrons failed: %v", err)
	}

	types := map[string]CronJob{}
	for _, job := range jobs {
		types[job.Metadata.Type] = job
		if job.Timezone != "Asia/Tokyo" {
			t.Errorf("job %s timezone = %q", job.Name, job.Timezone)
		}
	}

	// 14:30 UTC reminder is 23:30 JST on the previous local evening.
	if got := types["reminder"].Schedule; got != "30 23 7 3 *" {
		t.Errorf("reminder schedule = %q, want 23:30 JST wall clock", got)
	}
	if got := types["ticker_start"].Schedule; got != "55 23 7 3 *" {
		t.Errorf("ticker_start schedule = %q, want 23:55 JST wall clock", got)
	}
}

func TestFixtureCrons_UnknownTimezone(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := FixtureCrons(testFixture(now.Add(48*time.Hour)), now, Options{Timezone: "Mars/Olympus"})
	if err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestFixtureCrons_SchedulesParse(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	jobs, err := FixtureCrons(testFixture(now.Add(48*time.Hour)), now, Options{})
	if err != nil {
		t.Fatalf("FixtureCrons failed: %v", err)
	}
	for _, job := range jobs {
		if _, err := cron.ParseStandard(job.Schedule); err != nil {
			t.Errorf("job %s has unparseable schedule %q: %v", job.Name, job.Schedule, err)
		}
	}
}

func TestFixtureCrons_PastFixtureProducesNothing(t *testing.T) {
	now := time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)
	jobs, err := FixtureCrons(testFixture(now.Add(-3*time.Hour)), now, Options{})
	if err != nil {
		t.Fatalf("FixtureCrons failed: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected no jobs for a past fixture, got %d", len(jobs))
	}
}

func TestFixtureCrons_ImminentKickoffSkipsReminder(t *testing.T) {
	now := time.Date(2026, 3, 7, 14, 50, 0, 0, time.UTC)
	kickoff := now.Add(10 * time.Minute)

	jobs, err := FixtureCrons(testFixture(kickoff), now, Options{})
	if err != nil {
		t.Fatalf("FixtureCrons failed: %v", err)
	}
	for _, job := range jobs {
		if job.Metadata.Type == "reminder" {
			t.Error("reminder emitted although its fire time is already past")
		}
	}
}

func TestNextRun(t *testing.T) {
	job := CronJob{Schedule: "*/2 * * * *"}
	from := time.Date(2026, 3, 7, 15, 1, 0, 0, time.UTC)

	next, err := NextRun(job, from)
	if err != nil {
		t.Fatalf("NextRun failed: %v", err)
	}
	if next.Minute()%2 != 0 || !next.After(from) {
		t.Errorf("next run = %v", next)
	}
}

func TestSummary(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	jobs, err := GenerateCrons([]Fixture{testFixture(now.Add(72 * time.Hour))}, now, Options{})
	if err != nil {
		t.Fatalf("GenerateCrons failed: %v", err)
	}

	got := Summary(jobs, now)
	if !strings.Contains(got, "United vs West Ham (Premier League)") {
		t.Errorf("summary missing match description:\n%s", got)
	}
	if !strings.Contains(got, "3 cron jobs for 1 fixtures") {
		t.Errorf("summary missing totals:\n%s", got)
	}
}

func TestSummary_Empty(t *testing.T) {
	got := Summary(nil, time.Now())
	if !strings.Contains(got, "No cron jobs") {
		t.Errorf("unexpected empty summary: %s", got)
	}
}
