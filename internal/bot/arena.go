package bot

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/efreeman/hexfront/pkg/hexwar"
)

// ArenaConfig configures a single bot-vs-bot match.
type ArenaConfig struct {
	Name       string
	TeamConfig map[hexwar.Team]string // team -> difficulty level
	MaxTurns   int                    // cap before calling a draw
	Seed       int64                  // 0 = random
}

// ArenaResult describes the outcome of a completed match.
type ArenaResult struct {
	Name      string         `json:"name"`
	Winner    string         `json:"winner"` // team name or "" for draw
	Turns     int            `json:"turns"`
	Units     map[string]int `json:"units"`     // team -> surviving units
	Buildings map[string]int `json:"buildings"` // team -> owned buildings
	Seed      int64          `json:"seed"`
}

// RunMatch plays a full match on gs, mutating it in place. Teams act in
// sorted name order each turn; each team's strategy plans its whole turn
// against a snapshot and the actions are applied one by one, dropping
// any that went stale. A team with no units and no buildings is
// eliminated; the last team standing wins.
func RunMatch(ctx context.Context, cfg ArenaConfig, gs *hexwar.GameState) (*ArenaResult, error) {
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = 200
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	teams := make([]hexwar.Team, 0, len(gs.Teams))
	for t := range gs.Teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i] < teams[j] })

	strategies := make(map[hexwar.Team]Strategy, len(teams))
	for _, t := range teams {
		diff := cfg.TeamConfig[t]
		if diff == "" {
			diff = cfg.TeamConfig["*"]
		}
		strategies[t] = StrategyForDifficulty(diff, rand.New(rand.NewSource(rng.Int63())))
	}

	result := &ArenaResult{
		Name:      cfg.Name,
		Seed:      seed,
		Units:     make(map[string]int),
		Buildings: make(map[string]int),
	}

	for gs.Turn = 1; gs.Turn <= cfg.MaxTurns; gs.Turn++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		for _, team := range teams {
			if !gs.TeamAlive(team) {
				continue
			}
			snapshot := gs.Clone()
			actions := strategies[team].PlanTurn(snapshot, team)
			for _, act := range actions {
				if !hexwar.ApplyAction(gs, team, act, rng) {
					log.Debug().
						Str("match", cfg.Name).
						Str("team", string(team)).
						Str("action", act.Describe()).
						Msg("Dropped stale action")
				}
				hexwar.RemoveDead(gs)
			}
		}

		alive := livingTeams(gs, teams)
		if len(alive) <= 1 {
			if len(alive) == 1 {
				result.Winner = string(alive[0])
			}
			result.Turns = gs.Turn
			fillCounts(result, gs, teams)
			log.Info().Str("match", cfg.Name).Str("winner", result.Winner).Int("turns", result.Turns).Msg("Match decided")
			return result, nil
		}
	}

	result.Turns = cfg.MaxTurns
	fillCounts(result, gs, teams)
	log.Info().Str("match", cfg.Name).Int("turns", result.Turns).Msg("Match ended as draw (turn limit)")
	return result, nil
}

func livingTeams(gs *hexwar.GameState, teams []hexwar.Team) []hexwar.Team {
	var alive []hexwar.Team
	for _, t := range teams {
		if gs.TeamAlive(t) {
			alive = append(alive, t)
		}
	}
	return alive
}

func fillCounts(result *ArenaResult, gs *hexwar.GameState, teams []hexwar.Team) {
	for _, t := range teams {
		result.Units[string(t)] = len(gs.UnitsOf(t))
		result.Buildings[string(t)] = len(gs.BuildingsOf(t, ""))
	}
}

// ParseTeamConfig parses "red=greedy,blue=random" style strings into a
// team config map. A "*" key sets the default for unlisted teams.
func ParseTeamConfig(s string) (map[hexwar.Team]string, error) {
	out := make(map[hexwar.Team]string)
	if s == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 || kv[0] == "" || kv[1] == "" {
			return nil, fmt.Errorf("bad team config entry %q (want team=difficulty)", part)
		}
		out[hexwar.Team(kv[0])] = kv[1]
	}
	return out, nil
}
