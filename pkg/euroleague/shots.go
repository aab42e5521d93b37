package euroleague

import (
	"bytes"
	"encoding/json"
	"strings"
)

// IntBool decodes a JSON field the feed emits as either 0/1 or true/false.
type IntBool bool

func (b *IntBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*b = true
		return nil
	case "false", "null":
		*b = false
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*b = n != 0
	return nil
}

// Shot is one shot attempt with court location data. CoordX/CoordY are -1 and
// Zone is blank for free throws.
type Shot struct {
	NumAnot           int     `json:"NUM_ANOT"`
	Team              string  `json:"TEAM"`
	PlayerID          string  `json:"ID_PLAYER"`
	Player            string  `json:"PLAYER"`
	ActionID          string  `json:"ID_ACTION"`
	Action            string  `json:"ACTION"`
	Points            int     `json:"POINTS"`
	CoordX            int     `json:"COORD_X"`
	CoordY            int     `json:"COORD_Y"`
	Zone              string  `json:"ZONE"`
	Fastbreak         IntBool `json:"FASTBREAK"`
	SecondChance      IntBool `json:"SECOND_CHANCE"`
	PointsOffTurnover IntBool `json:"POINTS_OFF_TURNOVER"`
	Minute            int     `json:"MINUTE"`
	Console           string  `json:"CONSOLE"`
	PointsA           int     `json:"POINTS_A"`
	PointsB           int     `json:"POINTS_B"`
	UTC               string  `json:"UTC"`
}

// IsMade reports whether the shot went in.
func (s Shot) IsMade() bool {
	switch s.ActionID {
	case "2FGM", "3FGM", "FTM":
		return true
	}
	return false
}

// IsMissed reports whether the shot missed.
func (s Shot) IsMissed() bool {
	switch s.ActionID {
	case "2FGA", "3FGA", "FTA":
		return true
	}
	return false
}

// IsThreePointer reports whether the attempt was from beyond the arc.
func (s Shot) IsThreePointer() bool {
	return s.ActionID == "3FGM" || s.ActionID == "3FGA"
}

// IsTwoPointer reports whether the attempt was a two-point shot.
func (s Shot) IsTwoPointer() bool {
	return s.ActionID == "2FGM" || s.ActionID == "2FGA"
}

// IsFreeThrow reports whether the attempt was a free throw.
func (s Shot) IsFreeThrow() bool {
	return s.ActionID == "FTM" || s.ActionID == "FTA"
}

// HasCoordinates reports whether the shot carries a usable court location.
func (s Shot) HasCoordinates() bool {
	return s.CoordX >= 0 && s.CoordY >= 0
}

// TeamCode returns the team identifier with the feed's space padding removed.
func (s Shot) TeamCode() string {
	return strings.TrimSpace(s.Team)
}

// Shots is a game's full shot chart.
type Shots struct {
	Rows []Shot `json:"Rows"`
}

// TotalShots returns the number of attempts in the game.
func (s *Shots) TotalShots() int { return len(s.Rows) }

func (s *Shots) filter(keep func(Shot) bool) []Shot {
	var out []Shot
	for _, shot := range s.Rows {
		if keep(shot) {
			out = append(out, shot)
		}
	}
	return out
}

// Made returns only the shots that went in.
func (s *Shots) Made() []Shot { return s.filter(Shot.IsMade) }

// Missed returns only the shots that missed.
func (s *Shots) Missed() []Shot { return s.filter(Shot.IsMissed) }

// FieldGoals returns all attempts except free throws.
func (s *Shots) FieldGoals() []Shot {
	return s.filter(func(shot Shot) bool { return !shot.IsFreeThrow() })
}

// ThreePointers returns all three-point attempts.
func (s *Shots) ThreePointers() []Shot { return s.filter(Shot.IsThreePointer) }

// TwoPointers returns all two-point attempts.
func (s *Shots) TwoPointers() []Shot { return s.filter(Shot.IsTwoPointer) }

// FreeThrows returns all free throw attempts.
func (s *Shots) FreeThrows() []Shot { return s.filter(Shot.IsFreeThrow) }

// ByTeam returns the shots attributed to teamCode (padding-insensitive).
func (s *Shots) ByTeam(teamCode string) []Shot {
	teamCode = strings.TrimSpace(teamCode)
	return s.filter(func(shot Shot) bool { return shot.TeamCode() == teamCode })
}

// ByPlayer returns the shots attributed to playerID.
func (s *Shots) ByPlayer(playerID string) []Shot {
	return s.filter(func(shot Shot) bool { return shot.PlayerID == playerID })
}

// ByZone returns the shots taken from court zone (letters A-I).
func (s *Shots) ByZone(zone string) []Shot {
	return s.filter(func(shot Shot) bool { return shot.Zone == zone })
}

// ShootingPercentage returns made/attempted over the given shots as 0-100,
// or 0 for an empty slice.
func ShootingPercentage(shots []Shot) float64 {
	if len(shots) == 0 {
		return 0
	}
	made := 0
	for _, shot := range shots {
		if shot.IsMade() {
			made++
		}
	}
	return float64(made) / float64(len(shots)) * 100
}

// FieldGoalPercentage returns the game's FG% (free throws excluded).
func (s *Shots) FieldGoalPercentage() float64 {
	return ShootingPercentage(s.FieldGoals())
}

// ThreePointPercentage returns the game's 3P%.
func (s *Shots) ThreePointPercentage() float64 {
	return ShootingPercentage(s.ThreePointers())
}

// FreeThrowPercentage returns the game's FT%.
func (s *Shots) FreeThrowPercentage() float64 {
	return ShootingPercentage(s.FreeThrows())
}
