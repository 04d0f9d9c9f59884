package ticker

import (
	"fmt"
	"strings"
)

// Format renders an alert record as the emoji-annotated text the monitor
// prints. Pure, and total over every record the differ can produce: kinds
// it doesn't recognize still render a readable line.
func Format(a AlertRecord) string {
	score := fmt.Sprintf("%s %d-%d %s", a.HomeTeam, a.HomeScore, a.AwayScore, a.AwayTeam)

	switch a.Kind {
	case AlertKickoff:
		return fmt.Sprintf("🏟️ **KICK OFF!** %s\n%s vs %s\n%s",
			a.TeamEmoji, a.HomeTeam, a.AwayTeam, a.League)

	case AlertGoal:
		header := "GOAL!"
		switch a.EventKind {
		case KindOwnGoal:
			header = "OWN GOAL!"
		case KindPenaltyGoal:
			header = "PENALTY!"
		}
		return fmt.Sprintf("%s **%s** %s\n⚽ %s (%s)\n**%s**",
			a.Emoji, header, a.Clock, a.Player, a.EventTeam, score)

	case AlertRedCard:
		return fmt.Sprintf("%s 🟥 **RED CARD!** %s\n%s (%s)",
			a.Emoji, a.Clock, a.Player, a.EventTeam)

	case AlertHalftime:
		return fmt.Sprintf("⏸️ **HALFTIME** %s\n%s", a.TeamEmoji, score)

	case AlertFulltime:
		result := string(a.Outcome)
		if a.Outcome == OutcomeWin {
			result = "WIN!"
		}
		return fmt.Sprintf("🏁 **FULL TIME - %s** %s %s\n%s",
			result, a.Emoji, a.TeamEmoji, score)

	default:
		return fmt.Sprintf("📋 %s %s\n%s", a.Clock, a.Kind, score)
	}
}

// FormatEvent renders a single match event for scoreboard listings.
func FormatEvent(ev MatchEvent) string {
	switch ev.Kind {
	case KindGoal:
		return fmt.Sprintf("⚽ %s %s (%s)", ev.Clock, ev.Player, ev.Team)
	case KindOwnGoal:
		return fmt.Sprintf("⚽ %s %s (OG) (%s)", ev.Clock, ev.Player, ev.Team)
	case KindPenaltyGoal:
		return fmt.Sprintf("⚽ %s %s (pen) (%s)", ev.Clock, ev.Player, ev.Team)
	case KindYellowCard:
		return fmt.Sprintf("🟨 %s %s (%s)", ev.Clock, ev.Player, ev.Team)
	case KindRedCard:
		return fmt.Sprintf("🟥 %s %s (%s)", ev.Clock, ev.Player, ev.Team)
	case KindSubstitution:
		return fmt.Sprintf("🔄 %s %s (%s)", ev.Clock, ev.Player, ev.Team)
	default:
		return fmt.Sprintf("📋 %s %s: %s", ev.Clock, ev.Kind, ev.Player)
	}
}

// FormatMatchHeader renders a status header line for scoreboard listings.
func FormatMatchHeader(status MatchStatus, displayClock, description string) string {
	switch status {
	case StatusInProgress:
		return "🔴 LIVE " + displayClock
	case StatusHalftime:
		return "⏸️ HALFTIME"
	case StatusFinal:
		return "🏁 FULL TIME"
	default:
		if description == "" {
			description = "Scheduled"
		}
		return "📅 " + description
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
