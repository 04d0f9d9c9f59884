// Command scores prints the current scoreboard for every tracked team with
// a match today, including recent key events.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dantezy/sports-ticker/internal/config"
	"github.com/dantezy/sports-ticker/internal/espn"
	"github.com/dantezy/sports-ticker/internal/ticker"
)

// recentEvents caps how many key events a match block lists.
const recentEvents = 8

func main() {
	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[scores] ")
	log.SetOutput(os.Stderr)

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	configPath := flag.String("config", env.ConfigPath, "path to config file")
	withEvents := flag.Bool("events", true, "include recent key events")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := espn.NewClientWith(env.ESPNBaseURL, env.HTTPTimeout)
	ctx := context.Background()

	found := 0
	for _, team := range cfg.EnabledTeams() {
		if team.ESPNID == "" {
			continue
		}
		match, err := client.FindTeamMatch(ctx, team.ESPNID, team.SportOrDefault(), team.Leagues())
		if err != nil {
			if errors.Is(err, espn.ErrNotFound) {
				continue
			}
			log.Printf("%s: %v", team.Name, err)
			continue
		}
		found++
		printMatch(ctx, client, team, match, *withEvents)
		fmt.Println()
	}

	if found == 0 {
		fmt.Println("No matches today for your teams.")
	}
}

func printMatch(ctx context.Context, client *espn.Client, team config.TrackedTeam, match *espn.TeamMatch, withEvents bool) {
	event := match.Event
	status := ticker.ParseStatus(event.Status.Type.Description)

	fmt.Printf("%s %s — %s\n", team.EmojiOrDefault(), team.Name, espn.LeagueName(match.League))
	fmt.Println(ticker.FormatMatchHeader(status, event.Status.DisplayClock, event.Status.Type.Description))

	if len(event.Competitions) > 0 {
		home, away := "?", "?"
		homeScore, awayScore := "0", "0"
		for _, c := range event.Competitions[0].Competitors {
			if c.HomeAway == "home" {
				home, homeScore = c.Team.DisplayName, c.Score
			} else {
				away, awayScore = c.Team.DisplayName, c.Score
			}
		}
		fmt.Printf("**%s %s - %s %s**\n", home, homeScore, awayScore, away)
	}

	if !withEvents {
		return
	}
	keyEvents, err := client.KeyEvents(ctx, match.Sport, match.League, event.ID)
	if err != nil {
		log.Printf("%s: key events unavailable: %v", team.Name, err)
		return
	}
	events := ticker.MapKeyEvents(keyEvents)
	if len(events) > recentEvents {
		events = events[len(events)-recentEvents:]
	}
	for _, ev := range events {
		fmt.Println(ticker.FormatEvent(ev))
	}
}
