package metrics

import (
	"time"
)

// TurnMetric captures one turn: who played, which box absorbed the
// token, and the score the absorption returned.
type TurnMetric struct {
	Turn   int
	Player string // "A" or "B"
	Box    int    // Index in the box set's fixed creation order
	Token  float64
	Score  float64
}

type GameMetric struct {
	TokenCount int
	ScoreA     float64
	ScoreB     float64
	Winner     string // "" on a tied game
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(tokenCount int)
	AddTurn(metric TurnMetric)
	Turns() []TurnMetric
	Complete(scoreA, scoreB float64) GameMetric
}

type collector struct {
	tokenCount int
	startTime  time.Time
	turns      []TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(tokenCount int) {
	c.startTime = time.Now()
	c.tokenCount = tokenCount
	c.turns = nil
}

func (c *collector) AddTurn(metric TurnMetric) {
	c.turns = append(c.turns, metric)
}

func (c *collector) Turns() []TurnMetric {
	return c.turns
}

func (c *collector) Complete(scoreA, scoreB float64) GameMetric {
	endTime := time.Now()
	return GameMetric{
		TokenCount: c.tokenCount,
		ScoreA:     scoreA,
		ScoreB:     scoreB,
		Winner:     winner(scoreA, scoreB),
		StartTime:  c.startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(c.startTime),
	}
}

func winner(scoreA, scoreB float64) string {
	switch {
	case scoreA > scoreB:
		return "PlayerA"
	case scoreB > scoreA:
		return "PlayerB"
	default:
		return ""
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start(tokenCount int)                       {}
func (d *dummyCollector) AddTurn(metric TurnMetric)                  {}
func (d *dummyCollector) Turns() []TurnMetric                        { return nil }
func (d *dummyCollector) Complete(scoreA, scoreB float64) GameMetric { return GameMetric{} }
