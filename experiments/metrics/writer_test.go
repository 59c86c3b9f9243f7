package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriterGameRecords(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("expected no error creating writer, got %v", err)
	}

	start := time.Now()
	records := []GameRecord{
		{ID: 1, GameMetric: GameMetric{
			TokenCount: 4,
			ScoreA:     13,
			ScoreB:     25,
			Winner:     "PlayerB",
			StartTime:  start,
			EndTime:    start.Add(time.Millisecond),
			Duration:   time.Millisecond,
		}},
	}

	if err := writer.WriteGameRecords(records); err != nil {
		t.Fatalf("expected no error writing game records, got %v", err)
	}

	rows := readCSV(t, dir, "game_records.csv")
	if len(rows) != 2 {
		t.Fatalf("expected header plus 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "id" || rows[0][4] != "winner" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "1" || rows[1][2] != "13" || rows[1][3] != "25" || rows[1][4] != "PlayerB" {
		t.Errorf("unexpected game record row: %v", rows[1])
	}
}

func TestWriterTurnRecords(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("expected no error creating writer, got %v", err)
	}

	records := []TurnRecord{
		{Game: 1, TurnMetric: TurnMetric{Turn: 1, Player: "A", Box: 0, Token: 1, Score: 1}},
		{Game: 1, TurnMetric: TurnMetric{Turn: 2, Player: "B", Box: 1, Token: 1, Score: 1}},
	}

	if err := writer.WriteTurnRecords(records); err != nil {
		t.Fatalf("expected no error writing turn records, got %v", err)
	}

	rows := readCSV(t, dir, "turn_records.csv")
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d rows", len(rows))
	}
	if rows[2][2] != "B" || rows[2][3] != "1" {
		t.Errorf("unexpected turn record row: %v", rows[2])
	}
}

func TestCollector(t *testing.T) {
	collector := NewCollector()
	collector.Start(2)
	collector.AddTurn(TurnMetric{Turn: 1, Player: "A", Token: 1, Score: 1})
	collector.AddTurn(TurnMetric{Turn: 2, Player: "B", Token: 2, Score: 4})

	metric := collector.Complete(1, 4)
	if metric.TokenCount != 2 {
		t.Errorf("expected token count 2, got %d", metric.TokenCount)
	}
	if metric.Winner != "PlayerB" {
		t.Errorf("expected PlayerB to win, got %q", metric.Winner)
	}
	if len(collector.Turns()) != 2 {
		t.Errorf("expected 2 turn metrics, got %d", len(collector.Turns()))
	}

	tied := NewCollector()
	tied.Start(0)
	if got := tied.Complete(3, 3); got.Winner != "" {
		t.Errorf("expected no winner on a tie, got %q", got.Winner)
	}
}

// readCSV finds the timestamped run directory under dir and parses the
// named file in it.
func readCSV(t *testing.T, dir, name string) [][]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list %s: %v", dir, err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single run directory, got %d entries", len(entries))
	}

	f, err := os.Open(filepath.Join(dir, entries[0].Name(), name))
	if err != nil {
		t.Fatalf("failed to open %s: %v", name, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse %s: %v", name, err)
	}
	return rows
}
