package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a run directory dir/name/<timestamp> for the CSV files.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "match_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "opponent", "rounds", "wins", "losses", "draws", "outcome", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write match records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Opponent,
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Losses),
			strconv.Itoa(record.Draws),
			record.Outcome,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	path := filepath.Join(w.baseDir, "round_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create round records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"match", "round", "mine", "theirs", "outcome"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write round records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Match),
			strconv.Itoa(record.Round),
			record.Mine,
			record.Theirs,
			record.Outcome,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write round record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteStandings(records []StandingRecord) error {
	path := filepath.Join(w.baseDir, "standings.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create standings file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"opponent", "matches", "match_wins", "match_losses", "match_draws", "round_wins", "round_losses", "round_draws", "win_rate"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write standings header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Opponent,
			strconv.Itoa(record.Matches),
			strconv.Itoa(record.MatchWins),
			strconv.Itoa(record.MatchLosses),
			strconv.Itoa(record.MatchDraws),
			strconv.Itoa(record.RoundWins),
			strconv.Itoa(record.RoundLosses),
			strconv.Itoa(record.RoundDraws),
			strconv.FormatFloat(record.WinRate, 'f', 4, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write standings row: %w", err)
		}
	}

	return nil
}
