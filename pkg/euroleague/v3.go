package euroleague

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/courtside/euroleague-go/pkg/transport"
)

// V3Service covers the statistics-focused endpoints.
type V3Service struct {
	PlayerStats *PlayerStatsService
	TeamStats   *TeamStatsService
	Standings   *StandingsService
}

func newV3Service(tc *transport.Client) *V3Service {
	return &V3Service{
		PlayerStats: &PlayerStatsService{http: tc},
		TeamStats:   &TeamStatsService{http: tc},
		Standings:   &StandingsService{http: tc},
	}
}

// LeadersParams filter a statistical leaders query. SeasonCode applies to
// SeasonModeSingle; FromSeasonCode/ToSeasonCode to SeasonModeRange.
type LeadersParams struct {
	SeasonMode     *SeasonMode
	SeasonCode     *string
	FromSeasonCode *string
	ToSeasonCode   *string
	PhaseTypeCode  *PhaseType
	TeamCode       *string
	Limit          int
}

func (p LeadersParams) query() transport.Params {
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	return transport.Params{
		"SeasonMode":     p.SeasonMode,
		"SeasonCode":     p.SeasonCode,
		"FromSeasonCode": p.FromSeasonCode,
		"ToSeasonCode":   p.ToSeasonCode,
		"phaseTypeCode":  p.PhaseTypeCode,
		"teamCode":       p.TeamCode,
		"limit":          limit,
	}
}

// TraditionalParams filter and order a traditional statistics query.
// Statistic names the column to sort by.
type TraditionalParams struct {
	SeasonMode    *SeasonMode
	SeasonCode    *string
	PhaseTypeCode *PhaseType
	StatisticMode *StatisticMode
	Statistic     *string
	SortDirection *SortDirection
	Offset        int
	Limit         int
}

func (p TraditionalParams) query() transport.Params {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	return transport.Params{
		"SeasonMode":    p.SeasonMode,
		"SeasonCode":    p.SeasonCode,
		"phaseTypeCode": p.PhaseTypeCode,
		"statisticMode": p.StatisticMode,
		"statistic":     p.Statistic,
		"sortDirection": p.SortDirection,
		"offset":        p.Offset,
		"limit":         limit,
	}
}

// PlayerStatsService serves v3 player statistics.
type PlayerStatsService struct {
	http *transport.Client
}

// Leaders returns the statistical leaders among players.
func (s *PlayerStatsService) Leaders(ctx context.Context, competition CompetitionCode, params LeadersParams) (json.RawMessage, error) {
	path := fmt.Sprintf("v3/competitions/%s/statistics/players/leaders", competition)
	return s.http.Get(ctx, path, params.query())
}

// Traditional returns box-score player statistics.
func (s *PlayerStatsService) Traditional(ctx context.Context, competition CompetitionCode, params TraditionalParams) (json.RawMessage, error) {
	path := fmt.Sprintf("v3/competitions/%s/statistics/players/traditional", competition)
	return s.http.Get(ctx, path, params.query())
}

// Advanced returns efficiency-derived player statistics.
func (s *PlayerStatsService) Advanced(ctx context.Context, competition CompetitionCode, params TraditionalParams) (json.RawMessage, error) {
	path := fmt.Sprintf("v3/competitions/%s/statistics/players/advanced", competition)
	return s.http.Get(ctx, path, params.query())
}

// TeamStatsService serves v3 team statistics.
type TeamStatsService struct {
	http *transport.Client
}

// Leaders returns the statistical leaders among teams.
func (s *TeamStatsService) Leaders(ctx context.Context, competition CompetitionCode, params LeadersParams) (json.RawMessage, error) {
	path := fmt.Sprintf("v3/competitions/%s/statistics/teams/leaders", competition)
	return s.http.Get(ctx, path, params.query())
}

// Traditional returns box-score team statistics.
func (s *TeamStatsService) Traditional(ctx context.Context, competition CompetitionCode, params TraditionalParams) (json.RawMessage, error) {
	path := fmt.Sprintf("v3/competitions/%s/statistics/teams/traditional", competition)
	return s.http.Get(ctx, path, params.query())
}

// StandingsService serves the v3 per-round standings views.
type StandingsService struct {
	http *transport.Client
}

func (s *StandingsService) roundPath(competition CompetitionCode, seasonCode string, round int, view string) string {
	return fmt.Sprintf("v3/competitions/%s/seasons/%s/rounds/%d/%s", competition, url.PathEscape(seasonCode), round, view)
}

// Basic returns standard win-loss standings as of a round.
func (s *StandingsService) Basic(ctx context.Context, competition CompetitionCode, seasonCode string, round int) (json.RawMessage, error) {
	return s.http.Get(ctx, s.roundPath(competition, seasonCode, round, "basicstandings"), nil)
}

// Calendar returns each team's results round by round.
func (s *StandingsService) Calendar(ctx context.Context, competition CompetitionCode, seasonCode string, round int) (json.RawMessage, error) {
	return s.http.Get(ctx, s.roundPath(competition, seasonCode, round, "calendarstandings"), nil)
}

// Streaks returns current winning and losing streaks per team.
func (s *StandingsService) Streaks(ctx context.Context, competition CompetitionCode, seasonCode string, round int) (json.RawMessage, error) {
	return s.http.Get(ctx, s.roundPath(competition, seasonCode, round, "streaks"), nil)
}

// AheadBehind returns games ahead/behind for each team relative to the rest.
func (s *StandingsService) AheadBehind(ctx context.Context, competition CompetitionCode, seasonCode string, round int) (json.RawMessage, error) {
	return s.http.Get(ctx, s.roundPath(competition, seasonCode, round, "aheadbehind"), nil)
}

// Margins returns point differentials per team.
func (s *StandingsService) Margins(ctx context.Context, competition CompetitionCode, seasonCode string, round int) (json.RawMessage, error) {
	return s.http.Get(ctx, s.roundPath(competition, seasonCode, round, "margins"), nil)
}
