package euroleague

import (
	"context"
	"encoding/json"

	"github.com/courtside/euroleague-go/pkg/transport"
)

// LiveService serves the live game feeds. These endpoints sit at the API
// root rather than under a version prefix, take lowercase query parameters,
// and use prefixed season codes ("E2025").
type LiveService struct {
	http *transport.Client
}

func liveParams(seasonCode string, gameCode int) transport.Params {
	return transport.Params{
		"seasoncode": seasonCode,
		"gamecode":   gameCode,
	}
}

// PlayByPlay returns the game's full event stream organized by quarter.
func (s *LiveService) PlayByPlay(ctx context.Context, seasonCode string, gameCode int) (*PlayByPlay, error) {
	var pbp PlayByPlay
	if err := s.http.GetJSON(ctx, "PlayByPlay", liveParams(seasonCode, gameCode), &pbp); err != nil {
		return nil, err
	}
	return &pbp, nil
}

// PlayByPlayRaw returns the undecoded play-by-play body, for callers that
// need fields the model does not carry.
func (s *LiveService) PlayByPlayRaw(ctx context.Context, seasonCode string, gameCode int) (json.RawMessage, error) {
	return s.http.Get(ctx, "PlayByPlay", liveParams(seasonCode, gameCode))
}

// Shots returns the game's shot chart data with court coordinates.
func (s *LiveService) Shots(ctx context.Context, seasonCode string, gameCode int) (*Shots, error) {
	var shots Shots
	if err := s.http.GetJSON(ctx, "Points", liveParams(seasonCode, gameCode), &shots); err != nil {
		return nil, err
	}
	return &shots, nil
}

// ShotsRaw returns the undecoded shot data body.
func (s *LiveService) ShotsRaw(ctx context.Context, seasonCode string, gameCode int) (json.RawMessage, error) {
	return s.http.Get(ctx, "Points", liveParams(seasonCode, gameCode))
}
