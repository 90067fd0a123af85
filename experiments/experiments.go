package experiments

import (
	"amazons/engine"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
	"amazons/player"
	"amazons/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Fixed depths above searcher.MiddlegameDepth take minutes per opening move.
var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: searcher.OpeningDepth},
	{ID: 2, Depth: searcher.MiddlegameDepth},
}

// RunDepthExperiment pairs each fixed-depth agent against the move-count
// schedule and against the random baseline.
func RunDepthExperiment(baseDir string, seed uint64) error {
	scheduled := metrics.AgentConfig{ID: 3}
	random := metrics.AgentConfig{ID: 4, Random: true, Seed: seed}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, scheduled})
	}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, random})
	}
	matchUps = append(matchUps, []metrics.AgentConfig{scheduled, random})

	configs := append(append([]metrics.AgentConfig{}, depthConfigs...), scheduled, random)
	return runExperiment(baseDir, "depth", configs, matchUps, meta.NUM_GAMES)
}

func runExperiment(baseDir, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int) error {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		for i := 0; i < numGames; i++ {
			// Alternate colours so each agent starts half of the games
			white, black := matchup[0], matchup[1]
			if i%2 == 1 {
				white, black = black, white
			}

			log.Info().Msgf("starting matchup %d of %d game %d of %d between white=%s and black=%s...",
				mi+1, len(matchUps), i+1, numGames, white.Label(), black.Label())

			count++
			winner, gameMetric, moveMetrics, err := runGame(white, black, uint64(count))
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     white.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner.Name())
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(baseDir, name, configs, gameRecords, moveRecords)
}

func store(baseDir, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(baseDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return nil
}

// runGame plays a single game; gameSeed varies random agents between games.
func runGame(white, black metrics.AgentConfig, gameSeed uint64) (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.Local(createPlayer(game.White, white, gameSeed), createPlayer(game.Black, black, gameSeed))
	return e.Run()
}

func createPlayer(side game.Piece, config metrics.AgentConfig, gameSeed uint64) player.Player {
	if config.Random {
		return player.NewRandom(side, config.Seed+gameSeed)
	}

	options := []searcher.Option{}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	return player.NewAI(side, options...)
}
