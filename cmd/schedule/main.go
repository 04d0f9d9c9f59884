// Command schedule lists upcoming fixtures for the configured teams.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dantezy/sports-ticker/internal/config"
	"github.com/dantezy/sports-ticker/internal/espn"
	"github.com/dantezy/sports-ticker/internal/schedule"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[schedule] ")
	log.SetOutput(os.Stderr)

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	configPath := flag.String("config", env.ConfigPath, "path to config file")
	days := flag.Int("days", schedule.DefaultDays, "number of days to look ahead")
	team := flag.String("team", "", "filter by team name")
	compact := flag.Bool("compact", false, "one line per fixture")
	asJSON := flag.Bool("json", false, "output as JSON")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := espn.NewClientWith(env.ESPNBaseURL, env.HTTPTimeout)
	ctx := context.Background()
	now := time.Now()

	if *asJSON {
		fixtures := schedule.AllFixtures(ctx, client, cfg, *days, *team, now)
		out, err := json.MarshalIndent(fixtures, "", "  ")
		if err != nil {
			log.Fatalf("failed to encode fixtures: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	teams := cfg.EnabledTeams()
	if *team != "" {
		t, ok := cfg.TeamByName(*team)
		if !ok {
			log.Fatalf("team %q not found in config", *team)
		}
		teams = []config.TrackedTeam{t}
	}

	var parts []string
	for _, t := range teams {
		if t.ESPNID == "" {
			continue
		}
		fixtures, err := schedule.TeamFixtures(ctx, client, t, *days, now)
		if err != nil {
			log.Printf("%s: %v", t.Name, err)
			continue
		}
		parts = append(parts, schedule.FormatFixtures(t, fixtures, *compact))
	}

	if len(parts) == 0 {
		fmt.Println("No teams with ESPN IDs configured.")
		return
	}
	fmt.Println(strings.Join(parts, "\n"+strings.Repeat("─", 40)+"\n"))
}
