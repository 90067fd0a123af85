package main

import (
	"amazons/engine"
	"amazons/experiments"
	"amazons/game"
	"amazons/gamemaster"
	"amazons/player"
	"amazons/searcher"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "selfplay", "One of selfplay, human, random, experiment, throughput")
	whiteDepth := flag.Int("white-depth", 0, "White search depth (0 follows the move-count schedule)")
	blackDepth := flag.Int("black-depth", 0, "Black search depth (0 follows the move-count schedule)")
	seed := flag.Uint64("seed", 1, "Seed for random players")
	out := flag.String("out", "results", "Directory for experiment records")
	debug := flag.Bool("debug", false, "Log search statistics")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "selfplay":
		err = playGame(newAI(game.White, *whiteDepth), newAI(game.Black, *blackDepth))
	case "human":
		err = playGame(player.NewHuman(game.White, os.Stdin), newAI(game.Black, *blackDepth))
	case "random":
		err = playGame(newAI(game.White, *whiteDepth), player.NewRandom(game.Black, *seed))
	case "experiment":
		err = experiments.RunDepthExperiment(*out, *seed)
	case "throughput":
		err = experiments.RunThroughputExperiment(*out)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("amazons stopped")
	}
}

func newAI(side game.Piece, depth int) *player.AI {
	if depth > 0 {
		return player.NewAI(side, searcher.WithDepth(depth))
	}
	return player.NewAI(side)
}

// playGame prints the board after every move to stdout.
func playGame(white, black player.Player) error {
	fmt.Println(game.NewBoard())
	e := engine.Local(white, black, engine.WithObserver(func(u gamemaster.Update) {
		fmt.Printf("%d. %s %s\n%s\n", u.Board.NumMoves(), u.Board.Turn().Opponent().Name(), u.Move, u.Board)
	}))

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	if winner == game.Empty {
		fmt.Printf("No winner after %d moves\n", gameMetric.TotalMoves)
		return nil
	}
	fmt.Printf("%s wins after %d moves (%s)\n", winner.Name(), gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}
