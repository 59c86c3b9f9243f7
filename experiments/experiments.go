package experiments

import (
	"fmt"
	"path/filepath"

	"boxgame/engine"
	"boxgame/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	NumGames      = 30
	TokensPerGame = 20
	MaxToken      = 50
	LadderLength  = 16
)

// RunFibonacciLadder plays one game per Fibonacci prefix of increasing
// length and persists the game and turn records.
func RunFibonacciLadder() error {
	writer, err := metrics.NewWriter(filepath.Join("experiments", "fibonacci_ladder"))
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	log.Info().Msg("starting fibonacci ladder experiment...")

	tokens := fibonacci(LadderLength)
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}
	for n := 1; n <= len(tokens); n++ {
		gameRecord, turns := playRecorded(n, tokens[:n])
		gameRecords = append(gameRecords, gameRecord)
		turnRecords = append(turnRecords, turns...)

		log.Info().Msgf("game %d over: %d tokens, player A %v, player B %v", n, n, gameRecord.ScoreA, gameRecord.ScoreB)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return fmt.Errorf("failed to store turn records: %w", err)
	}

	log.Info().Msg("finished fibonacci ladder experiment")
	return nil
}

// RunRandomTokens plays a number of games over seeded random integer
// token sequences and persists the records. The same seed reproduces
// the same games.
func RunRandomTokens(games, tokensPerGame int, seed uint64) error {
	writer, err := metrics.NewWriter(filepath.Join("experiments", "random_tokens"))
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	log.Info().Msgf("starting random tokens experiment with seed %d...", seed)

	rng := rand.New(rand.NewSource(seed))
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}
	for i := 0; i < games; i++ {
		tokens := randomTokens(rng, tokensPerGame)
		gameRecord, turns := playRecorded(i+1, tokens)
		gameRecords = append(gameRecords, gameRecord)
		turnRecords = append(turnRecords, turns...)

		log.Info().Msgf("game %d of %d over: player A %v, player B %v", i+1, games, gameRecord.ScoreA, gameRecord.ScoreB)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return fmt.Errorf("failed to store turn records: %w", err)
	}

	log.Info().Msg("finished random tokens experiment")
	return nil
}

// playRecorded runs one game with a recording collector and returns
// its records keyed by the given game id.
func playRecorded(id int, tokens []float64) (metrics.GameRecord, []metrics.TurnRecord) {
	e := engine.New(engine.WithCollector(metrics.NewCollector()))
	e.Run(tokens)

	gameRecord := metrics.GameRecord{ID: id, GameMetric: e.Metrics()}
	turnRecords := make([]metrics.TurnRecord, 0, len(tokens))
	for _, turn := range e.Trace() {
		turnRecords = append(turnRecords, metrics.TurnRecord{Game: id, TurnMetric: turn})
	}
	return gameRecord, turnRecords
}

func randomTokens(rng *rand.Rand, n int) []float64 {
	tokens := make([]float64, n)
	for i := range tokens {
		tokens[i] = float64(rng.Intn(MaxToken) + 1)
	}
	return tokens
}

func fibonacci(n int) []float64 {
	tokens := make([]float64, n)
	a, b := 1.0, 1.0
	for i := 0; i < n; i++ {
		tokens[i] = a
		a, b = b, a+b
	}
	return tokens
}
