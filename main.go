package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"boxgame/engine"
	"boxgame/experiments"
)

func main() {
	tokens := flag.String("tokens", "", "Comma-separated list of input token weights")
	experiment := flag.String("experiment", "", "Experiment to run instead of a single game: fibonacci or random")
	games := flag.Int("games", experiments.NumGames, "Number of games for the random experiment")
	seed := flag.Uint64("seed", 1, "Seed for the random experiment")
	verbose := flag.Bool("verbose", false, "Log each turn")
	flag.Parse()

	if *experiment != "" {
		if err := runExperiment(*experiment, *games, *seed); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	weights, err := parseTokens(*tokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid tokens: %v\n", err)
		os.Exit(1)
	}

	scoreA, scoreB := engine.New(engine.WithLogging(*verbose)).Run(weights)
	fmt.Printf("Scores: player A %v, player B %v\n", scoreA, scoreB)
}

func runExperiment(name string, games int, seed uint64) error {
	switch name {
	case "fibonacci":
		return experiments.RunFibonacciLadder()
	case "random":
		return experiments.RunRandomTokens(games, experiments.TokensPerGame, seed)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
}

// parseTokens parses a comma-separated list of non-negative integer
// token weights.
func parseTokens(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	weights := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		weights[i] = float64(v)
	}
	return weights, nil
}
