package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is ESPN's public site API. No key required.
	DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	defaultTimeout = 15 * time.Second
	userAgent      = "Mozilla/5.0"

	// Scanning several leagues per team can fan out quickly; keep the
	// request rate polite so ESPN doesn't start serving error pages.
	requestsPerSecond = 4
	requestBurst      = 4
)

// ErrNotFound is returned when the feed has no match for the requested team.
var ErrNotFound = errors.New("espn: not found")

// Client fetches live sports data from ESPN's public API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates an ESPN API client with default settings.
func NewClient() *Client {
	return NewClientWith(DefaultBaseURL, defaultTimeout)
}

// NewClientWith creates an ESPN API client with a custom base URL and
// timeout. An empty baseURL or zero timeout keeps the defaults.
func NewClientWith(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// Scoreboard fetches the current scoreboard for a league.
func (c *Client) Scoreboard(ctx context.Context, sport, league string) (*ScoreboardResponse, error) {
	url := fmt.Sprintf("%s/%s/%s/scoreboard", c.baseURL, sport, league)
	var out ScoreboardResponse
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary fetches the detailed match summary, including key events.
func (c *Client) Summary(ctx context.Context, sport, league, eventID string) (*SummaryResponse, error) {
	url := fmt.Sprintf("%s/%s/%s/summary?event=%s", c.baseURL, sport, league, eventID)
	var out SummaryResponse
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// KeyEvents fetches the chronological key events (goals, cards, subs) of a
// match.
func (c *Client) KeyEvents(ctx context.Context, sport, league, eventID string) ([]KeyEvent, error) {
	summary, err := c.Summary(ctx, sport, league, eventID)
	if err != nil {
		return nil, err
	}
	return summary.KeyEvents, nil
}

// LeagueTeams fetches all teams in a soccer league, not just the ones on
// today's scoreboard.
func (c *Client) LeagueTeams(ctx context.Context, league string) ([]Team, error) {
	url := fmt.Sprintf("%s/soccer/%s/teams", c.baseURL, league)
	var out TeamsResponse
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, err
	}

	var teams []Team
	for _, sport := range out.Sports {
		for _, lg := range sport.Leagues {
			for _, entry := range lg.Teams {
				teams = append(teams, entry.Team)
			}
		}
	}
	return teams, nil
}

// SearchTeam looks for teams whose display, short, or nickname contains
// name (case-insensitive) across the given leagues. Leagues that fail to
// fetch are skipped so one dead league doesn't kill the search.
func (c *Client) SearchTeam(ctx context.Context, name string, leagues []string) ([]TeamResult, error) {
	if len(leagues) == 0 {
		leagues = DefaultSearchLeagues
	}
	needle := strings.ToLower(name)

	var results []TeamResult
	for _, league := range leagues {
		teams, err := c.LeagueTeams(ctx, league)
		if err != nil {
			if ctx.Err() != nil {
				return results, ctx.Err()
			}
			continue
		}
		for _, team := range teams {
			if strings.Contains(strings.ToLower(team.DisplayName), needle) ||
				strings.Contains(strings.ToLower(team.ShortDisplayName), needle) ||
				strings.Contains(strings.ToLower(team.Nickname), needle) {
				results = append(results, TeamResult{
					ID:         team.ID,
					Name:       team.DisplayName,
					Short:      team.ShortDisplayName,
					League:     league,
					LeagueName: LeagueName(league),
				})
			}
		}
	}
	return results, nil
}

// FindTeamMatch scans the scoreboards of the given leagues for an event
// involving teamID. Returns ErrNotFound when the team isn't playing today.
// A league whose scoreboard fails to fetch is skipped; the error only
// surfaces when every league failed.
func (c *Client) FindTeamMatch(ctx context.Context, teamID, sport string, leagues []string) (*TeamMatch, error) {
	var lastErr error
	failed := 0
	for _, league := range leagues {
		board, err := c.Scoreboard(ctx, sport, league)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failed++
			lastErr = err
			continue
		}
		for _, event := range board.Events {
			for _, comp := range event.Competitions {
				for _, competitor := range comp.Competitors {
					if competitor.Team.ID == teamID {
						return &TeamMatch{Event: event, Sport: sport, League: league}, nil
					}
				}
			}
		}
	}
	if failed == len(leagues) && lastErr != nil {
		return nil, fmt.Errorf("all leagues failed: %w", lastErr)
	}
	return nil, ErrNotFound
}

// TeamSchedule fetches a team's fixtures in one league.
func (c *Client) TeamSchedule(ctx context.Context, sport, league, teamID string) ([]Event, error) {
	url := fmt.Sprintf("%s/%s/%s/teams/%s/schedule", c.baseURL, sport, league, teamID)
	var out ScheduleResponse
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ESPN API returned status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	// ESPN serves HTML error pages with a 200 on some failures.
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "<") {
		return fmt.Errorf("ESPN returned an HTML error page for %s", url)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
