// Command crons emits cron schedule descriptors for upcoming fixtures.
// The output is data for a host scheduler to register; nothing is executed
// here.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dantezy/sports-ticker/internal/config"
	"github.com/dantezy/sports-ticker/internal/espn"
	"github.com/dantezy/sports-ticker/internal/schedule"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[crons] ")
	log.SetOutput(os.Stderr)

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	configPath := flag.String("config", env.ConfigPath, "path to config file")
	days := flag.Int("days", 7, "number of days to look ahead")
	team := flag.String("team", "", "filter by team name")
	reminder := flag.Int("reminder", int(schedule.DefaultReminderLead.Minutes()), "reminder minutes before kickoff")
	timezone := flag.String("tz", "", "timezone for the emitted schedules")
	output := flag.String("output", "", "write JSON to this file instead of stdout")
	asJSON := flag.Bool("json", false, "output as JSON")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := espn.NewClientWith(env.ESPNBaseURL, env.HTTPTimeout)
	now := time.Now()

	fixtures := schedule.AllFixtures(context.Background(), client, cfg, *days, *team, now)
	if len(fixtures) == 0 {
		fmt.Println("No upcoming fixtures found.")
		return
	}

	jobs, err := schedule.GenerateCrons(fixtures, now, schedule.Options{
		ReminderLead: time.Duration(*reminder) * time.Minute,
		Timezone:     *timezone,
	})
	if err != nil {
		log.Fatalf("failed to generate cron jobs: %v", err)
	}

	switch {
	case *output != "":
		data, err := json.MarshalIndent(jobs, "", "  ")
		if err != nil {
			log.Fatalf("failed to encode cron jobs: %v", err)
		}
		if err := os.WriteFile(*output, append(data, '\n'), 0o644); err != nil {
			log.Fatalf("failed to write %s: %v", *output, err)
		}
		fmt.Printf("✅ Wrote %d cron configs to %s\n", len(jobs), *output)

	case *asJSON:
		data, err := json.MarshalIndent(jobs, "", "  ")
		if err != nil {
			log.Fatalf("failed to encode cron jobs: %v", err)
		}
		fmt.Println(string(data))

	default:
		fmt.Println(schedule.Summary(jobs, now))
		fmt.Println("\n💡 Use -json or -output for machine-readable output")
	}
}
