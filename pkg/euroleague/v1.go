package euroleague

import (
	"context"
	"encoding/json"

	"github.com/courtside/euroleague-go/pkg/transport"
)

// V1Service covers the legacy query-parameter endpoints. Season codes here
// carry the competition prefix ("E2024"), unlike V2/V3 where competition and
// season are separate path segments.
type V1Service struct {
	http *transport.Client
}

func newV1Service(tc *transport.Client) *V1Service {
	return &V1Service{http: tc}
}

// Results returns all games played in a season, optionally only those after
// gameNumber.
func (s *V1Service) Results(ctx context.Context, seasonCode string, gameNumber *int) (json.RawMessage, error) {
	return s.http.Get(ctx, "v1/results", transport.Params{
		"seasonCode": seasonCode,
		"gameNumber": gameNumber,
	})
}

// Schedules returns the upcoming game schedule for a season.
func (s *V1Service) Schedules(ctx context.Context, seasonCode string, gameNumber *int) (json.RawMessage, error) {
	return s.http.Get(ctx, "v1/schedules", transport.Params{
		"seasonCode": seasonCode,
		"gameNumber": gameNumber,
	})
}

// Game returns box score information for one game.
func (s *V1Service) Game(ctx context.Context, seasonCode string, gameCode int) (json.RawMessage, error) {
	return s.http.Get(ctx, "v1/games", transport.Params{
		"seasonCode": seasonCode,
		"gameCode":   gameCode,
	})
}

// Standings returns standings for all groups and stages of a season,
// optionally snapshotted at gameNumber.
func (s *V1Service) Standings(ctx context.Context, seasonCode string, gameNumber *int) (json.RawMessage, error) {
	return s.http.Get(ctx, "v1/standings", transport.Params{
		"seasonCode": seasonCode,
		"gameNumber": gameNumber,
	})
}

// Teams returns all clubs with games and rosters for a season.
func (s *V1Service) Teams(ctx context.Context, seasonCode string) (json.RawMessage, error) {
	return s.http.Get(ctx, "v1/teams", transport.Params{
		"seasonCode": seasonCode,
	})
}

// Player returns a player with accumulated stats per season and phase.
func (s *V1Service) Player(ctx context.Context, playerCode, seasonCode string) (json.RawMessage, error) {
	return s.http.Get(ctx, "v1/players", transport.Params{
		"playerCode": playerCode,
		"seasonCode": seasonCode,
	})
}
