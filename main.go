package main

import (
	"flag"
	"fmt"
	"os"

	"nogo/agent"
	"nogo/engine"
	"nogo/experiments"
	"nogo/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	blackArgs := flag.String("black", "name=black role=black", "Black agent key=value arguments")
	whiteArgs := flag.String("white", "name=white role=white", "White agent key=value arguments")
	size := flag.Int("size", meta.BOARD_SIZE, "Board edge length")
	games := flag.Int("games", 1, "Number of games to play")
	verbose := flag.Bool("verbose", false, "Render the board after every move")
	experiment := flag.String("experiment", "", "Run a named experiment (exploration|baseline) instead of games")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *experiment != "" {
		runExperiment(*experiment)
		return
	}

	// The -size flag seeds both agents; an explicit size= pair in the
	// agent arguments still wins because later pairs override earlier ones.
	black, err := agent.NewPlayer(fmt.Sprintf("size=%d %s", *size, *blackArgs))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid black agent arguments")
	}
	white, err := agent.NewPlayer(fmt.Sprintf("size=%d %s", *size, *whiteArgs))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid white agent arguments")
	}

	if black.Size() != white.Size() {
		log.Fatal().
			Int("black", black.Size()).
			Int("white", white.Size()).
			Msg("agents disagree on the board size")
	}

	options := []engine.LocalOption{}
	if *verbose {
		options = append(options, engine.WithVerbose())
	}
	e, err := engine.LocalEngine(black.Size(), black, white, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build engine")
	}

	wins := map[string]int{}
	for i := 0; i < *games; i++ {
		result := e.Run()
		wins[result.Winner.String()]++
	}
	log.Info().
		Int("games", *games).
		Int("black", wins["black"]).
		Int("white", wins["white"]).
		Msg("all games finished")
}

func runExperiment(name string) {
	var err error
	switch name {
	case "exploration":
		err = experiments.RunExplorationExperiment()
	case "baseline":
		err = experiments.RunBaselineExperiment()
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("experiment %q failed", name)
	}
}
