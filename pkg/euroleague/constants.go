package euroleague

// DefaultBaseURL is the production Euroleague API host.
const DefaultBaseURL = "https://api-live.euroleague.net"

// CompetitionCode identifies one of the two competitions the API serves.
type CompetitionCode string

const (
	Euroleague CompetitionCode = "E"
	Eurocup    CompetitionCode = "U"
)

// SeasonMode selects single-season or season-range statistics queries.
type SeasonMode string

const (
	SeasonModeSingle SeasonMode = "Single"
	SeasonModeRange  SeasonMode = "Range"
)

// StatisticMode is the aggregation applied to statistics results.
type StatisticMode string

const (
	StatisticPerGame     StatisticMode = "PerGame"
	StatisticAccumulated StatisticMode = "Accumulated"
	StatisticPer40       StatisticMode = "Per40"
)

// SortDirection orders statistics results.
type SortDirection string

const (
	SortAscending  SortDirection = "Ascending"
	SortDescending SortDirection = "Descending"
)

// PersonType classifies people in the database.
type PersonType string

const (
	PersonPlayer  PersonType = "Player"
	PersonCoach   PersonType = "Coach"
	PersonReferee PersonType = "Referee"
)

// PhaseType identifies the stage of a season.
type PhaseType string

const (
	PhaseRegularSeason PhaseType = "RS"
	PhasePlayoffs      PhaseType = "PO"
	PhaseFinalFour     PhaseType = "FF"
	PhaseTop16         PhaseType = "TS"
)

// Int returns a pointer to v, for optional numeric filters.
func Int(v int) *int { return &v }

// String returns a pointer to v, for optional string filters.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for optional boolean filters.
func Bool(v bool) *bool { return &v }
