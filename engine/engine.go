package engine

import (
	"boxgame/experiments/metrics"
	"boxgame/game"

	"github.com/rs/zerolog/log"
)

type Phase int

const (
	SetupPhase Phase = iota
	PlayingPhase
	FinishedPhase
)

type Option func(e *Engine)

// WithCollector records per-turn and per-game metrics during the run.
func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.collector = c
		}
	}
}

// WithLogging enables per-turn logging.
func WithLogging(enabled bool) Option {
	return func(e *Engine) {
		e.logging = enabled
	}
}

// Engine owns the box set and the two players for the lifetime of one
// game. An Engine runs a single game and is then discarded; Run panics
// on reuse.
type Engine struct {
	Boxes   *game.BoxSet
	PlayerA *game.Player
	PlayerB *game.Player

	phase      Phase
	logging    bool
	collector  metrics.Collector
	gameMetric metrics.GameMetric
}

func New(options ...Option) *Engine {
	e := &Engine{
		Boxes:     game.NewBoxSet(),
		PlayerA:   game.NewPlayer(),
		PlayerB:   game.NewPlayer(),
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run consumes the tokens one per turn, alternating players starting
// with player A, and returns the final scores. An empty token list
// yields (0, 0) with no turns played.
func (e *Engine) Run(tokens []float64) (float64, float64) {
	if e.phase != SetupPhase {
		panic("engine already ran its game")
	}

	e.collector.Start(len(tokens))

	for i, token := range tokens {
		e.phase = PlayingPhase

		current, name := e.PlayerA, "A"
		if i%2 == 1 {
			current, name = e.PlayerB, "B"
		}

		boxIndex := e.Boxes.LightestIndex()
		score := current.TakeTurn(token, e.Boxes)

		e.collector.AddTurn(metrics.TurnMetric{
			Turn:   i + 1,
			Player: name,
			Box:    boxIndex,
			Token:  token,
			Score:  score,
		})
		if e.logging {
			log.Info().Msgf("turn %d: player %s fed box %d token %v and scored %v", i+1, name, boxIndex, token, score)
		}
	}

	e.phase = FinishedPhase
	scoreA, scoreB := e.PlayerA.Score(), e.PlayerB.Score()
	e.gameMetric = e.collector.Complete(scoreA, scoreB)
	return scoreA, scoreB
}

// Phase returns the engine's lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Trace returns the per-turn records of the finished game. Empty
// unless the engine was built with a recording collector.
func (e *Engine) Trace() []metrics.TurnMetric {
	return e.collector.Turns()
}

// Metrics returns the game-level record of the finished game.
func (e *Engine) Metrics() metrics.GameMetric {
	return e.gameMetric
}

// Play runs one full game over the given tokens and returns the final
// scores of players A and B.
func Play(tokens []float64) (float64, float64) {
	return New().Run(tokens)
}
