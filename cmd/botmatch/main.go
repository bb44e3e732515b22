// Command botmatch runs bot-vs-bot matches and reports win rates.
//
//	botmatch -t red=greedy,blue=random -n 20 -workers 4 -seed 7
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/efreeman/hexfront/internal/bot"
	"github.com/efreeman/hexfront/internal/config"
	"github.com/efreeman/hexfront/internal/logger"
	"github.com/efreeman/hexfront/internal/scenario"
	"github.com/efreeman/hexfront/internal/store"
	"github.com/efreeman/hexfront/pkg/hexwar"
)

func main() {
	logger.Init()
	cfg := config.Load()

	var (
		teamCfg      string
		numMatches   int
		workers      int
		maxTurns     int
		seed         int64
		scenarioPath string
		dbPath       string
		dryRun       bool
		jsonOut      bool
	)

	flag.StringVar(&teamCfg, "t", "*=greedy", "Team config (e.g. red=greedy,blue=random)")
	flag.IntVar(&numMatches, "n", 1, "Number of matches to run")
	flag.IntVar(&workers, "workers", 1, "Concurrency (parallel matches)")
	flag.IntVar(&maxTurns, "max-turns", 200, "Max turns before draw")
	flag.Int64Var(&seed, "seed", 0, "Base seed (0 = random)")
	flag.StringVar(&scenarioPath, "scenario", cfg.ScenarioPath, "Scenario YAML (empty = built-in skirmish)")
	flag.StringVar(&dbPath, "db", cfg.DatabasePath, "Match database path")
	flag.BoolVar(&dryRun, "dry-run", false, "Skip database writes")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	flag.Parse()

	teams, err := bot.ParseTeamConfig(teamCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad team config")
	}

	load := func() (*hexwar.GameState, error) {
		if scenarioPath == "" {
			return scenario.Default(), nil
		}
		return scenario.Load(scenarioPath)
	}
	// Validate the scenario once up front.
	if _, err := load(); err != nil {
		log.Fatal().Err(err).Str("scenario", scenarioPath).Msg("Scenario load failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	var matchStore store.MatchStore
	if !dryRun {
		s, err := store.Open(dbPath)
		if err != nil {
			log.Fatal().Err(err).Str("db", dbPath).Msg("Match database open failed")
		}
		defer s.Close()
		matchStore = s
	}

	results := make([]*bot.ArenaResult, numMatches)
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	errCount := 0

	for i := 0; i < numMatches; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			matchSeed := seed
			if seed != 0 {
				matchSeed = seed + int64(idx)
			}

			gs, err := load()
			if err != nil {
				log.Error().Err(err).Int("match", idx+1).Msg("Scenario load failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}

			arenaCfg := bot.ArenaConfig{
				Name:       fmt.Sprintf("botmatch-%d", idx+1),
				TeamConfig: teams,
				MaxTurns:   maxTurns,
				Seed:       matchSeed,
			}
			result, err := bot.RunMatch(ctx, arenaCfg, gs)
			if err != nil {
				log.Error().Err(err).Int("match", idx+1).Msg("Match failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}

			if matchStore != nil {
				if err := matchStore.SaveMatch(ctx, result); err != nil {
					log.Error().Err(err).Int("match", idx+1).Msg("Save failed")
				}
			}

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			log.Info().Int("match", idx+1).Str("winner", result.Winner).Int("turns", result.Turns).Msg("Match completed")
		}(i)
	}

	wg.Wait()

	if jsonOut {
		printJSON(results, numMatches, errCount)
	} else {
		printSummary(results, teams, maxTurns, errCount)
	}
}

func printSummary(results []*bot.ArenaResult, teams map[hexwar.Team]string, maxTurns, errCount int) {
	type stats struct {
		wins       int
		draws      int
		totalUnits int
		matches    int
	}
	byTeam := make(map[string]*stats)

	completed := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		completed++
		for team, n := range r.Units {
			s := byTeam[team]
			if s == nil {
				s = &stats{}
				byTeam[team] = s
			}
			s.matches++
			s.totalUnits += n
			if r.Winner == team {
				s.wins++
			} else if r.Winner == "" {
				s.draws++
			}
		}
	}

	fmt.Printf("\nResults (%d matches, max %d turns):\n", completed, maxTurns)
	if errCount > 0 {
		fmt.Printf("  (%d matches failed)\n", errCount)
	}

	names := make([]string, 0, len(byTeam))
	for t := range byTeam {
		names = append(names, t)
	}
	sort.Strings(names)
	for _, t := range names {
		s := byTeam[t]
		diff := teams[hexwar.Team(t)]
		if diff == "" {
			diff = teams["*"]
		}
		avgUnits := 0.0
		if s.matches > 0 {
			avgUnits = float64(s.totalUnits) / float64(s.matches)
		}
		fmt.Printf("  %-10s (%s):  %d wins, %d draws  -- avg surviving units: %.1f\n",
			t, diff, s.wins, s.draws, avgUnits)
	}
}

func printJSON(results []*bot.ArenaResult, total, errCount int) {
	out := struct {
		Total   int                `json:"total"`
		Errors  int                `json:"errors"`
		Results []*bot.ArenaResult `json:"results"`
	}{
		Total:   total,
		Errors:  errCount,
		Results: results,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
