package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissing is returned when the config file does not exist. Callers treat
// it as fatal: there is nothing to monitor without a team list.
var ErrMissing = errors.New("config: file not found")

// TrackedTeam is one team the user wants alerts for. Created and edited via
// the config file; read-only at runtime.
type TrackedTeam struct {
	Name        string   `json:"name"`
	ShortName   string   `json:"short_name,omitempty"`
	Emoji       string   `json:"emoji,omitempty"`
	Sport       string   `json:"sport,omitempty"`
	ESPNID      string   `json:"espn_id,omitempty"`
	ESPNLeagues []string `json:"espn_leagues,omitempty"`
	Enabled     bool     `json:"enabled"`
}

// SportOrDefault returns the team's sport, defaulting to soccer.
func (t TrackedTeam) SportOrDefault() string {
	if t.Sport != "" {
		return t.Sport
	}
	return "soccer"
}

// Leagues returns the leagues to scan for this team.
func (t TrackedTeam) Leagues() []string {
	if len(t.ESPNLeagues) > 0 {
		return t.ESPNLeagues
	}
	return []string{"eng.1", "uefa.champions"}
}

// EmojiOrDefault returns the team emoji, defaulting to a football.
func (t TrackedTeam) EmojiOrDefault() string {
	if t.Emoji != "" {
		return t.Emoji
	}
	return "⚽"
}

// Short returns the short name, falling back to the first word of the name.
func (t TrackedTeam) Short() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	fields := strings.Fields(t.Name)
	if len(fields) > 0 {
		return fields[0]
	}
	return t.Name
}

// AlertPreferences toggles each alert type. All types default to enabled
// when absent from the config file.
type AlertPreferences struct {
	Goals    bool `json:"goals"`
	RedCards bool `json:"red_cards"`
	Halftime bool `json:"halftime"`
	Fulltime bool `json:"fulltime"`
	Kickoff  bool `json:"kickoff"`
}

// DefaultAlertPreferences enables every alert type.
func DefaultAlertPreferences() AlertPreferences {
	return AlertPreferences{Goals: true, RedCards: true, Halftime: true, Fulltime: true, Kickoff: true}
}

// UnmarshalJSON applies the enabled-by-default rule: only keys present in
// the file override the defaults.
func (p *AlertPreferences) UnmarshalJSON(b []byte) error {
	raw := struct {
		Goals    *bool `json:"goals"`
		RedCards *bool `json:"red_cards"`
		Halftime *bool `json:"halftime"`
		Fulltime *bool `json:"fulltime"`
		Kickoff  *bool `json:"kickoff"`
	}{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*p = DefaultAlertPreferences()
	if raw.Goals != nil {
		p.Goals = *raw.Goals
	}
	if raw.RedCards != nil {
		p.RedCards = *raw.RedCards
	}
	if raw.Halftime != nil {
		p.Halftime = *raw.Halftime
	}
	if raw.Fulltime != nil {
		p.Fulltime = *raw.Fulltime
	}
	if raw.Kickoff != nil {
		p.Kickoff = *raw.Kickoff
	}
	return nil
}

// Config is the on-disk configuration: tracked teams plus alert toggles.
type Config struct {
	Teams  []TrackedTeam    `json:"teams"`
	Alerts AlertPreferences `json:"alerts"`
}

// Load reads and parses the config file at path. A missing file yields
// ErrMissing so callers can exit before any fetch happens.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{Alerts: DefaultAlertPreferences()}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
// The write goes through a temp file and rename so a crash can't leave a
// half-written config behind.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}

// EnabledTeams returns the teams alerts should be produced for.
func (c *Config) EnabledTeams() []TrackedTeam {
	var out []TrackedTeam
	for _, t := range c.Teams {
		if t.Enabled {
			out = append(out, t)
		}
	}
	return out
}

// TeamByName finds an enabled team by case-insensitive substring match on
// its name or short name.
func (c *Config) TeamByName(name string) (TrackedTeam, bool) {
	needle := strings.ToLower(name)
	for _, t := range c.EnabledTeams() {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.ShortName), needle) {
			return t, true
		}
	}
	return TrackedTeam{}, false
}

// AddTeam appends a team to the list.
func (c *Config) AddTeam(t TrackedTeam) {
	c.Teams = append(c.Teams, t)
}
