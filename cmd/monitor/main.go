// Command monitor runs one live-monitoring cycle: load config and state,
// poll ESPN for every tracked team, and print any new alerts to stdout.
// It is meant to be invoked repeatedly by an external scheduler; empty
// output means "no news".
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dantezy/sports-ticker/internal/config"
	"github.com/dantezy/sports-ticker/internal/espn"
	"github.com/dantezy/sports-ticker/internal/notify"
	"github.com/dantezy/sports-ticker/internal/state"
	"github.com/dantezy/sports-ticker/internal/ticker"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[monitor] ")
	log.SetOutput(os.Stderr)

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	configPath := flag.String("config", env.ConfigPath, "path to config file")
	statePath := flag.String("state", env.StatePath, "path to seen-events state file")
	forward := flag.Bool("forward", true, "forward alerts to configured notification channels")
	verbose := flag.Bool("verbose", false, "log even when there are no new events")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if len(cfg.EnabledTeams()) == 0 {
		log.Fatalf("no enabled teams in %s", *configPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := espn.NewClientWith(env.ESPNBaseURL, env.HTTPTimeout)
	store := state.NewStore(*statePath)
	monitor := ticker.NewMonitor(cfg, client, store)

	alerts, err := monitor.Run(ctx)

	texts := make([]string, 0, len(alerts))
	for _, a := range alerts {
		texts = append(texts, ticker.Format(a))
	}

	for _, text := range texts {
		fmt.Println(text)
		fmt.Println("---")
	}

	if len(texts) > 0 && *forward {
		notify.Fanout(notify.FromEnv(env), texts)
	}

	if err != nil {
		log.Fatalf("run failed: %v", err)
	}
	if len(texts) == 0 && *verbose {
		log.Println("no live updates")
	}
}
