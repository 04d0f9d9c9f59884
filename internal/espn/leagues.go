package espn

import "sort"

// FootballLeagues maps ESPN soccer league codes to display names.
var FootballLeagues = map[string]string{
	// European domestic
	"eng.1": "Premier League",
	"eng.2": "Championship",
	"esp.1": "La Liga",
	"ger.1": "Bundesliga",
	"ita.1": "Serie A",
	"fra.1": "Ligue 1",
	"ned.1": "Eredivisie",
	"por.1": "Primeira Liga",
	"aut.1": "Austrian Bundesliga",
	// European competitions
	"uefa.champions":   "Champions League",
	"uefa.europa":      "Europa League",
	"uefa.europa.conf": "Conference League",
	// Americas
	"usa.1": "MLS",
	"mex.1": "Liga MX",
	"bra.1": "Brasileirão",
	"arg.1": "Argentine Primera",
	// International
	"fifa.world": "World Cup",
	"uefa.euro":  "Euros",
}

// DefaultSearchLeagues are scanned when a team search does not name leagues.
var DefaultSearchLeagues = []string{"eng.1", "esp.1", "ger.1", "ita.1", "fra.1", "uefa.champions"}

// LeagueName resolves a league code to its display name, falling back to
// the code itself for leagues not in the table.
func LeagueName(code string) string {
	if name, ok := FootballLeagues[code]; ok {
		return name
	}
	return code
}

// LeagueCodes returns all known league codes sorted by display name.
func LeagueCodes() []string {
	codes := make([]string, 0, len(FootballLeagues))
	for code := range FootballLeagues {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return FootballLeagues[codes[i]] < FootballLeagues[codes[j]]
	})
	return codes
}
