package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/solb/cs4gamesolver/searcher"
)

// SearcherConfig names one way of configuring the minimax searcher.
type SearcherConfig struct {
	ID        int
	Label     string
	Depth     int // 0 solves to the end
	AlphaBeta bool
	Table     bool
}

// GameRecord summarizes one self-play match.
type GameRecord struct {
	ID        int
	Searcher  int // SearcherConfig.ID
	Game      string
	Outcome   string // from the computer's perspective
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// MoveRecord carries the search effort behind a single move.
type MoveRecord struct {
	Game  int // GameRecord.ID
	Step  int
	Mover string
	searcher.MoveMetrics
}

// Writer stores experiment results as CSV files in a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp>/ and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory the records land in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSearcherConfigs(configs []SearcherConfig) error {
	return w.writeFile("searcher_configs.csv",
		[]string{"id", "label", "depth", "alpha_beta", "table"},
		len(configs), func(i int) []string {
			config := configs[i]
			return []string{
				strconv.Itoa(config.ID),
				config.Label,
				strconv.Itoa(config.Depth),
				strconv.FormatBool(config.AlphaBeta),
				strconv.FormatBool(config.Table),
			}
		})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeFile("game_records.csv",
		[]string{"id", "searcher", "game", "outcome", "moves", "start_time", "end_time", "duration"},
		len(records), func(i int) []string {
			record := records[i]
			return []string{
				strconv.Itoa(record.ID),
				strconv.Itoa(record.Searcher),
				record.Game,
				record.Outcome,
				strconv.Itoa(record.Moves),
				record.StartTime.Format(time.RFC3339),
				record.EndTime.Format(time.RFC3339),
				record.Duration.String(),
			}
		})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeFile("move_records.csv",
		[]string{"game", "step", "mover", "nodes", "table_hits", "cutoffs", "duration"},
		len(records), func(i int) []string {
			record := records[i]
			return []string{
				strconv.Itoa(record.Game),
				strconv.Itoa(record.Step),
				record.Mover,
				strconv.Itoa(record.Nodes),
				strconv.Itoa(record.TableHits),
				strconv.Itoa(record.Cutoffs),
				record.Duration.String(),
			}
		})
}

// writeFile renders one CSV file: a header row followed by rows table rows,
// each produced by the row callback.
func (w *Writer) writeFile(name string, header []string, rows int, row func(int) []string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
