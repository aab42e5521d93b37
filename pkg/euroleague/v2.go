package euroleague

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/courtside/euroleague-go/pkg/transport"
)

// defaultPageSize is the server's page size when the caller does not ask for
// one explicitly.
const defaultPageSize = 20

// V2Service covers the resource-path endpoints.
type V2Service struct {
	Clubs *ClubsService
	Games *GamesService
}

func newV2Service(tc *transport.Client) *V2Service {
	return &V2Service{
		Clubs: &ClubsService{http: tc},
		Games: &GamesService{http: tc},
	}
}

// ClubsService serves the v2/clubs endpoints.
type ClubsService struct {
	http *transport.Client
}

// ClubListParams filter and paginate the club list. The zero value requests
// the first page of all clubs.
type ClubListParams struct {
	Limit         int
	Offset        int
	HasParentClub *bool
	Search        *string
}

// List returns registered clubs, paginated.
func (s *ClubsService) List(ctx context.Context, params ClubListParams) (json.RawMessage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	return s.http.Get(ctx, "v2/clubs", transport.Params{
		"Limit":         limit,
		"Offset":        params.Offset,
		"hasParentClub": params.HasParentClub,
		"search":        params.Search,
	})
}

// Get returns one club by code (e.g. "BAR").
func (s *ClubsService) Get(ctx context.Context, clubCode string) (json.RawMessage, error) {
	return s.http.Get(ctx, "v2/clubs/"+url.PathEscape(clubCode), nil)
}

// Info returns extended information for one club.
func (s *ClubsService) Info(ctx context.Context, clubCode string) (json.RawMessage, error) {
	return s.http.Get(ctx, "v2/clubs/"+url.PathEscape(clubCode)+"/info", nil)
}

// Videos returns the latest videos for one club.
func (s *ClubsService) Videos(ctx context.Context, clubCode string) (json.RawMessage, error) {
	return s.http.Get(ctx, "v2/clubs/"+url.PathEscape(clubCode)+"/videos", nil)
}

// GamesService serves the v2 competition game endpoints.
type GamesService struct {
	http *transport.Client
}

// GameListParams filter and paginate a season's games.
type GameListParams struct {
	PhaseTypeCode *PhaseType
	RoundNumber   *int
	GroupName     *string
	GroupID       *int
	TeamCode      *string
	Limit         int
	Offset        int
	Search        *string
}

// List returns the games of a season, paginated. Season codes here are bare
// years ("2024"); the competition travels as its own path segment.
func (s *GamesService) List(ctx context.Context, competition CompetitionCode, seasonCode string, params GameListParams) (json.RawMessage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	path := fmt.Sprintf("v2/competitions/%s/seasons/%s/games", competition, url.PathEscape(seasonCode))
	return s.http.Get(ctx, path, transport.Params{
		"phaseTypeCode": params.PhaseTypeCode,
		"roundNumber":   params.RoundNumber,
		"groupName":     params.GroupName,
		"groupId":       params.GroupID,
		"teamCode":      params.TeamCode,
		"Limit":         limit,
		"Offset":        params.Offset,
		"search":        params.Search,
	})
}

// Get returns one game's details.
func (s *GamesService) Get(ctx context.Context, competition CompetitionCode, seasonCode string, gameCode int) (json.RawMessage, error) {
	path := fmt.Sprintf("v2/competitions/%s/seasons/%s/games/%d", competition, url.PathEscape(seasonCode), gameCode)
	return s.http.Get(ctx, path, nil)
}

// History returns the head-to-head history of a game's two teams.
func (s *GamesService) History(ctx context.Context, competition CompetitionCode, seasonCode string, gameCode int) (json.RawMessage, error) {
	path := fmt.Sprintf("v2/competitions/%s/seasons/%s/games/%d/history", competition, url.PathEscape(seasonCode), gameCode)
	return s.http.Get(ctx, path, nil)
}
