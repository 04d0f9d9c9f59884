// Command setup manages the tracked-team config: search ESPN for team IDs,
// add teams, and list what is configured.
//
// Usage:
//
//	setup find <team name>       search ESPN for a team's ID
//	setup add -name ... -id ...  add a team to the config
//	setup list                   show configured teams
//	setup leagues                list known league codes
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dantezy/sports-ticker/internal/config"
	"github.com/dantezy/sports-ticker/internal/espn"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[setup] ")
	log.SetOutput(os.Stderr)

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "find":
		if len(os.Args) < 3 {
			log.Fatal("usage: setup find <team name>")
		}
		runFind(env, strings.Join(os.Args[2:], " "))

	case "add":
		runAdd(env, os.Args[2:])

	case "list":
		runList(env)

	case "leagues":
		runLeagues()

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Sports Ticker Setup")
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  setup find <team name>   - Search ESPN for a team's ID")
	fmt.Fprintln(os.Stderr, "  setup add -name ... -id ... [-emoji ...] [-leagues a,b] [-short ...]")
	fmt.Fprintln(os.Stderr, "  setup list                - Show configured teams")
	fmt.Fprintln(os.Stderr, "  setup leagues             - List known league codes")
}

func runFind(env *config.Env, name string) {
	client := espn.NewClientWith(env.ESPNBaseURL, env.HTTPTimeout)

	fmt.Printf("Searching for %q...\n\n", name)
	results, err := client.SearchTeam(context.Background(), name, nil)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	if len(results) == 0 {
		fmt.Println("No teams found. Try the official team name (e.g. 'Tottenham Hotspur', not 'Spurs').")
		return
	}

	seen := map[string]bool{}
	for _, r := range results {
		key := r.ID + "|" + r.Name
		if seen[key] {
			continue
		}
		seen[key] = true
		fmt.Printf("  ID: %-6s | %-30s | %s\n", r.ID, r.Name, r.LeagueName)
	}
}

func runAdd(env *config.Env, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "team display name (required)")
	id := fs.String("id", "", "ESPN team ID (required)")
	short := fs.String("short", "", "short name (default: first word of name)")
	emoji := fs.String("emoji", "⚽", "team emoji")
	sport := fs.String("sport", "soccer", "sport path")
	leagues := fs.String("leagues", "eng.1,uefa.champions", "comma-separated league codes")
	fs.Parse(args)

	if *name == "" || *id == "" {
		log.Fatal("both -name and -id are required")
	}

	var leagueList []string
	for _, l := range strings.Split(*leagues, ",") {
		if l = strings.TrimSpace(l); l != "" {
			leagueList = append(leagueList, l)
		}
	}

	cfg, err := config.Load(env.ConfigPath)
	switch {
	case err == nil:
	case errors.Is(err, config.ErrMissing):
		// First team: start a fresh config.
		cfg = &config.Config{Alerts: config.DefaultAlertPreferences()}
	default:
		// A corrupt config must never be silently replaced.
		log.Fatalf("failed to load config: %v", err)
	}

	cfg.AddTeam(config.TrackedTeam{
		Name:        *name,
		ShortName:   *short,
		Emoji:       *emoji,
		Sport:       *sport,
		ESPNID:      *id,
		ESPNLeagues: leagueList,
		Enabled:     true,
	})

	if err := cfg.Save(env.ConfigPath); err != nil {
		log.Fatalf("failed to save config: %v", err)
	}
	fmt.Printf("✅ Added %s to %s\n", *name, env.ConfigPath)
}

func runList(env *config.Env) {
	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if len(cfg.Teams) == 0 {
		fmt.Println("No teams configured yet. Run 'setup find <name>' to get started.")
		return
	}

	fmt.Printf("Configured teams (%d):\n\n", len(cfg.Teams))
	for _, t := range cfg.Teams {
		state := " "
		if !t.Enabled {
			state = "(disabled)"
		}
		fmt.Printf("  %s %-25s ESPN:%-6s %s %s\n",
			t.EmojiOrDefault(), t.Name, t.ESPNID, strings.Join(t.Leagues(), ","), state)
	}
}

func runLeagues() {
	fmt.Println("Available Football/Soccer Leagues:")
	fmt.Println()
	for _, code := range espn.LeagueCodes() {
		fmt.Printf("  %-20s %s\n", code, espn.FootballLeagues[code])
	}
}
