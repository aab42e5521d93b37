package euroleague

import "strings"

// PlayEvent is a single event in a game's play-by-play stream. Field names on
// the wire are the feed's all-caps identifiers. Player and Team are empty for
// team-level events; PointsA/PointsB are nil on non-scoring events.
type PlayEvent struct {
	NumberOfPlay int    `json:"NUMBEROFPLAY"`
	PlayType     string `json:"PLAYTYPE"`
	Player       string `json:"PLAYER"`
	PlayerID     string `json:"PLAYER_ID"`
	Team         string `json:"TEAM"`
	TeamCode     string `json:"CODETEAM"`
	Dorsal       string `json:"DORSAL"`
	Minute       int    `json:"MINUTE"`
	MarkerTime   string `json:"MARKERTIME"`
	PointsA      *int   `json:"POINTS_A"`
	PointsB      *int   `json:"POINTS_B"`
	PlayInfo     string `json:"PLAYINFO"`
	Comment      string `json:"COMMENT"`
	EventType    int    `json:"TYPE"`
}

// IsScoringPlay reports whether the event is a made shot or free throw.
func (e PlayEvent) IsScoringPlay() bool {
	switch e.PlayType {
	case "2FGM", "3FGM", "FTM":
		return true
	}
	return false
}

// IsShotAttempt reports whether the event is any shot attempt, made or missed.
func (e PlayEvent) IsShotAttempt() bool {
	switch e.PlayType {
	case "2FGM", "2FGA", "3FGM", "3FGA", "FTM", "FTA":
		return true
	}
	return false
}

// PointsScored returns the points awarded by this event, 0 for non-scoring
// plays.
func (e PlayEvent) PointsScored() int {
	switch e.PlayType {
	case "3FGM":
		return 3
	case "2FGM":
		return 2
	case "FTM":
		return 1
	}
	return 0
}

// PlayByPlay is a game's full event stream organized by quarter. ExtraTime is
// empty unless the game went to overtime; ActualQuarter tracks the current
// quarter while Live is true.
type PlayByPlay struct {
	Live          bool        `json:"Live"`
	TeamA         string      `json:"TeamA"`
	TeamB         string      `json:"TeamB"`
	CodeTeamA     string      `json:"CodeTeamA"`
	CodeTeamB     string      `json:"CodeTeamB"`
	ActualQuarter int         `json:"ActualQuarter"`
	FirstQuarter  []PlayEvent `json:"FirstQuarter"`
	SecondQuarter []PlayEvent `json:"SecondQuarter"`
	ThirdQuarter  []PlayEvent `json:"ThirdQuarter"`
	FourthQuarter []PlayEvent `json:"FourthQuarter"`
	ExtraTime     []PlayEvent `json:"ExtraTime"`
}

// AllPlays returns every event across quarters in chronological order.
func (p *PlayByPlay) AllPlays() []PlayEvent {
	plays := make([]PlayEvent, 0,
		len(p.FirstQuarter)+len(p.SecondQuarter)+len(p.ThirdQuarter)+len(p.FourthQuarter)+len(p.ExtraTime))
	plays = append(plays, p.FirstQuarter...)
	plays = append(plays, p.SecondQuarter...)
	plays = append(plays, p.ThirdQuarter...)
	plays = append(plays, p.FourthQuarter...)
	plays = append(plays, p.ExtraTime...)
	return plays
}

// TotalPlays returns the number of events in the game.
func (p *PlayByPlay) TotalPlays() int {
	return len(p.FirstQuarter) + len(p.SecondQuarter) + len(p.ThirdQuarter) +
		len(p.FourthQuarter) + len(p.ExtraTime)
}

// Quarter returns the events of quarter n (1-4, 5 for overtime); nil for any
// other n.
func (p *PlayByPlay) Quarter(n int) []PlayEvent {
	switch n {
	case 1:
		return p.FirstQuarter
	case 2:
		return p.SecondQuarter
	case 3:
		return p.ThirdQuarter
	case 4:
		return p.FourthQuarter
	case 5:
		return p.ExtraTime
	}
	return nil
}

// PlaysByTeam returns every event attributed to teamCode. The feed pads team
// codes with spaces, so comparison is on trimmed values.
func (p *PlayByPlay) PlaysByTeam(teamCode string) []PlayEvent {
	teamCode = strings.TrimSpace(teamCode)
	var plays []PlayEvent
	for _, play := range p.AllPlays() {
		if strings.TrimSpace(play.TeamCode) == teamCode {
			plays = append(plays, play)
		}
	}
	return plays
}

// PlaysByPlayer returns every event attributed to playerID.
func (p *PlayByPlay) PlaysByPlayer(playerID string) []PlayEvent {
	var plays []PlayEvent
	for _, play := range p.AllPlays() {
		if play.PlayerID == playerID {
			plays = append(plays, play)
		}
	}
	return plays
}

// ScoringPlays returns every made shot and free throw in the game.
func (p *PlayByPlay) ScoringPlays() []PlayEvent {
	var plays []PlayEvent
	for _, play := range p.AllPlays() {
		if play.IsScoringPlay() {
			plays = append(plays, play)
		}
	}
	return plays
}
