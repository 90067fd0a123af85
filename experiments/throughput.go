package experiments

import (
	"amazons/experiments/metrics"
)

// RunThroughputExperiment plays each fixed-depth agent against itself so
// node rates can be compared at equal strength and similar game length.
func RunThroughputExperiment(baseDir string) error {
	const NumGames = 1 // Per match up
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}
	return runExperiment(baseDir, "throughput", depthConfigs, matchUps, NumGames)
}
