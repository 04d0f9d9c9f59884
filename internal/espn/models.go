package espn

// ESPN site API response types. Only the fields the ticker needs are
// mapped; everything else in the feed is ignored at decode time.

type ScoreboardResponse struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID           string        `json:"id"`
	Date         ESPNTime      `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Competitions []Competition `json:"competitions"`
	Status       Status        `json:"status"`
}

type Competition struct {
	ID          string       `json:"id"`
	Date        ESPNTime     `json:"date"`
	Competitors []Competitor `json:"competitors"`
	Venue       Venue        `json:"venue"`
	Status      Status       `json:"status"`
}

type Venue struct {
	FullName string `json:"fullName"`
}

type Competitor struct {
	ID       string `json:"id"`
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Winner   bool   `json:"winner"`
	Team     Team   `json:"team"`
}

type Team struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Nickname         string `json:"nickname"`
}

type Status struct {
	Clock        float64    `json:"clock"`
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         StatusType `json:"type"`
}

type StatusType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
}

// SummaryResponse is the slice of the match summary endpoint the ticker
// cares about: the chronological list of key events (goals, cards, subs).
type SummaryResponse struct {
	KeyEvents []KeyEvent `json:"keyEvents"`
}

type KeyEvent struct {
	ID           string        `json:"id"`
	Type         KeyEventType  `json:"type"`
	Clock        Clock         `json:"clock"`
	Team         Team          `json:"team"`
	Participants []Participant `json:"participants"`
}

type KeyEventType struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Clock struct {
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

type Participant struct {
	Athlete Athlete `json:"athlete"`
}

type Athlete struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// TeamsResponse mirrors the deeply nested shape of the league teams endpoint.
type TeamsResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team Team `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

// ScheduleResponse is the team schedule (fixtures) endpoint.
type ScheduleResponse struct {
	Team   Team    `json:"team"`
	Events []Event `json:"events"`
}

// TeamMatch is a scoreboard event matched to a tracked team, together with
// the league it was found in.
type TeamMatch struct {
	Event  Event
	Sport  string
	League string
}

// TeamResult is one hit from a team search.
type TeamResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Short      string `json:"short"`
	League     string `json:"league"`
	LeagueName string `json:"league_name"`
}
