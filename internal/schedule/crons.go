package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron"
)

// Descriptor defaults, matching the cadence the monitor is designed for.
const (
	DefaultReminderLead   = 30 * time.Minute
	DefaultTickerLead     = 5 * time.Minute
	DefaultTickerDuration = 3 * time.Hour
)

// tickerExpr polls every 2 minutes while a match window is open.
const tickerExpr = "*/2 * * * *"

// CronJob is a schedule descriptor for a host scheduler to register. It is
// never executed by this program.
type CronJob struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Schedule    string   `json:"schedule"`
	Timezone    string   `json:"timezone,omitempty"`
	OneShot     bool     `json:"oneshot"`
	Enabled     bool     `json:"enabled"`
	Window      *Window  `json:"window,omitempty"`
	Message     string   `json:"message"`
	Metadata    Metadata `json:"metadata"`
}

// Window bounds a repeating job to a match's live period.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Metadata carries the fixture context a scheduler payload needs.
type Metadata struct {
	Type      string     `json:"type"`
	FixtureID string     `json:"fixture_id"`
	League    string     `json:"league,omitempty"`
	Sport     string     `json:"sport,omitempty"`
	Kickoff   time.Time  `json:"kickoff"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Team      string     `json:"team"`
}

// Options tunes descriptor generation.
type Options struct {
	ReminderLead   time.Duration
	TickerLead     time.Duration
	TickerDuration time.Duration
	Timezone       string
}

func (o Options) withDefaults() Options {
	if o.ReminderLead <= 0 {
		o.ReminderLead = DefaultReminderLead
	}
	if o.TickerLead <= 0 {
		o.TickerLead = DefaultTickerLead
	}
	if o.TickerDuration <= 0 {
		o.TickerDuration = DefaultTickerDuration
	}
	return o
}

// FixtureCrons produces the schedule descriptors for one fixture: a
// pre-match reminder, a one-shot ticker activation, and a window-bound
// repeating ticker. Fixtures already kicked off produce nothing.
func FixtureCrons(f Fixture, now time.Time, opts Options) ([]CronJob, error) {
	opts = opts.withDefaults()

	kickoff := f.Date
	if !kickoff.After(now) {
		return nil, nil
	}

	// One-shot expressions must be wall-clock times in the zone the
	// descriptor is tagged with, or the host scheduler fires them shifted.
	zone := time.UTC
	if opts.Timezone != "" {
		z, err := time.LoadLocation(opts.Timezone)
		if err != nil {
			return nil, fmt.Errorf("loading timezone %q: %w", opts.Timezone, err)
		}
		zone = z
	}

	loc := "vs"
	if !f.IsHome {
		loc = "@"
	}
	opponent := f.OpponentShort
	if opponent == "" {
		opponent = f.Opponent
	}
	matchDesc := fmt.Sprintf("%s %s %s (%s)", f.TeamShort, loc, opponent, f.Competition)
	namePrefix := strings.ToLower(f.TeamShort)
	kickoffDate := kickoff.In(zone).Format("2006-01-02")

	var jobs []CronJob

	reminderAt := kickoff.Add(-opts.ReminderLead)
	if reminderAt.After(now) {
		jobs = append(jobs, CronJob{
			Name:        fmt.Sprintf("%s-reminder-%s", namePrefix, kickoffDate),
			Description: "Pre-match reminder: " + matchDesc,
			Schedule:    timeExpr(reminderAt.In(zone)),
			Timezone:    opts.Timezone,
			OneShot:     true,
			Enabled:     true,
			Message: fmt.Sprintf("⏰ **Match Reminder!**\n\n%s %s\n\n🕐 Kickoff in %d minutes!\n📍 %s",
				f.TeamEmoji, matchDesc, int(opts.ReminderLead.Minutes()), venueOrTBD(f.Venue)),
			Metadata: Metadata{
				Type:      "reminder",
				FixtureID: f.EventID,
				Kickoff:   kickoff,
				Team:      f.TeamShort,
			},
		})
	}

	tickerStart := kickoff.Add(-opts.TickerLead)
	tickerEnd := kickoff.Add(opts.TickerDuration)
	if tickerStart.After(now) {
		jobs = append(jobs, CronJob{
			Name:        fmt.Sprintf("%s-ticker-start-%s", namePrefix, kickoffDate),
			Description: "Start live ticker: " + matchDesc,
			Schedule:    timeExpr(tickerStart.In(zone)),
			Timezone:    opts.Timezone,
			OneShot:     true,
			Enabled:     true,
			Message: fmt.Sprintf("Enable the %s-ticker-%s job: %s is about to kick off (event %s, %s %s).",
				namePrefix, kickoffDate, matchDesc, f.EventID, f.Sport, f.League),
			Metadata: Metadata{
				Type:      "ticker_start",
				FixtureID: f.EventID,
				League:    f.League,
				Sport:     f.Sport,
				Kickoff:   kickoff,
				EndTime:   &tickerEnd,
				Team:      f.TeamShort,
			},
		})
	}

	// Repeating ticker, disabled until the start job flips it on.
	jobs = append(jobs, CronJob{
		Name:        fmt.Sprintf("%s-ticker-%s", namePrefix, kickoffDate),
		Description: "Live updates: " + matchDesc,
		Schedule:    tickerExpr,
		Timezone:    opts.Timezone,
		OneShot:     false,
		Enabled:     false,
		Window:      &Window{Start: tickerStart, End: tickerEnd},
		Message:     fmt.Sprintf("Run the live monitor for %s. Only new events are reported.", matchDesc),
		Metadata: Metadata{
			Type:      "ticker",
			FixtureID: f.EventID,
			League:    f.League,
			Sport:     f.Sport,
			Kickoff:   kickoff,
			Team:      f.TeamShort,
		},
	})

	for _, job := range jobs {
		if _, err := cron.ParseStandard(job.Schedule); err != nil {
			return nil, fmt.Errorf("invalid cron expression %q for %s: %w", job.Schedule, job.Name, err)
		}
	}
	return jobs, nil
}

// GenerateCrons produces descriptors for every fixture. A fixture that
// fails validation is logged by the caller and skipped.
func GenerateCrons(fixtures []Fixture, now time.Time, opts Options) ([]CronJob, error) {
	var all []CronJob
	for _, f := range fixtures {
		jobs, err := FixtureCrons(f, now, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, jobs...)
	}
	return all, nil
}

// NextRun computes when a job would next fire after from.
func NextRun(job CronJob, from time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard(job.Schedule)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing schedule %q: %w", job.Schedule, err)
	}
	return sched.Next(from), nil
}

// Summary renders a human-readable overview of generated jobs, grouped by
// fixture.
func Summary(jobs []CronJob, now time.Time) string {
	if len(jobs) == 0 {
		return "No cron jobs to generate (no upcoming fixtures found)."
	}

	var b strings.Builder
	b.WriteString("📅 **Generated Cron Jobs**\n")

	order := []string{}
	grouped := map[string][]CronJob{}
	for _, job := range jobs {
		id := job.Metadata.FixtureID
		if _, ok := grouped[id]; !ok {
			order = append(order, id)
		}
		grouped[id] = append(grouped[id], job)
	}

	fixtures := 0
	for _, id := range order {
		fixtures++
		group := grouped[id]
		desc := group[0].Description
		if i := strings.Index(desc, ": "); i >= 0 {
			desc = desc[i+2:]
		}
		fmt.Fprintf(&b, "\n🎯 **%s**\n", desc)
		for _, job := range group {
			mark := "⏸️"
			if job.Enabled {
				mark = "✅"
			}
			fmt.Fprintf(&b, "  %s `%s` (%s)\n", mark, job.Name, job.Metadata.Type)
			fmt.Fprintf(&b, "      Schedule: `%s`", job.Schedule)
			if next, err := NextRun(job, now); err == nil {
				fmt.Fprintf(&b, " next: %s", next.Format("2006-01-02 15:04"))
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n**Total: %d cron jobs for %d fixtures**", len(jobs), fixtures)
	return b.String()
}

// timeExpr renders a one-shot cron expression firing at t. The caller is
// responsible for converting t into the zone the job is tagged with.
func timeExpr(t time.Time) string {
	return fmt.Sprintf("%d %d %d %d *", t.Minute(), t.Hour(), t.Day(), int(t.Month()))
}

func venueOrTBD(v string) string {
	if v == "" {
		return "TBD"
	}
	return v
}
