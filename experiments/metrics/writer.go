package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// Output formats
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

type AgentConfig struct {
	ID         int
	Name       string
	Depth      int
	Rollouts   int
	Policy     string
	Weights    string
	Goroutines int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
	format  string
}

// NewWriter creates dir/name/<timestamp> and writes every table there in the
// given format.
func NewWriter(dir, name, format string) (*Writer, error) {
	if format != FormatCSV && format != FormatParquet {
		return nil, fmt.Errorf("unknown output format %q", format)
	}

	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		format:  format,
	}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

type agentRow struct {
	ID         int    `parquet:"id"`
	Name       string `parquet:"name,dict"`
	Depth      int    `parquet:"depth"`
	Rollouts   int    `parquet:"rollouts"`
	Policy     string `parquet:"policy,dict"`
	Weights    string `parquet:"weights"`
	Goroutines int    `parquet:"goroutines"`
}

var agentHeader = []string{"id", "name", "depth", "rollouts", "policy", "weights", "goroutines"}

func (r agentRow) values() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Name,
		strconv.Itoa(r.Depth),
		strconv.Itoa(r.Rollouts),
		r.Policy,
		r.Weights,
		strconv.Itoa(r.Goroutines),
	}
}

type gameRow struct {
	ID             int     `parquet:"id"`
	Agent1         int     `parquet:"agent1"`
	Agent2         int     `parquet:"agent2"`
	StartingPlayer int     `parquet:"starting_player"`
	Winner         int     `parquet:"winner"`
	Utility        float64 `parquet:"utility"`
	StartTime      string  `parquet:"start_time"`
	EndTime        string  `parquet:"end_time"`
	DurationMs     float64 `parquet:"duration_ms"`
	TotalMoves     int     `parquet:"total_moves"`
}

var gameHeader = []string{"id", "agent1", "agent2", "starting_player", "winner", "utility", "start_time", "end_time", "duration_ms", "total_moves"}

func (r gameRow) values() []string {
	return []string{
		strconv.Itoa(r.ID),
		strconv.Itoa(r.Agent1),
		strconv.Itoa(r.Agent2),
		strconv.Itoa(r.StartingPlayer),
		strconv.Itoa(r.Winner),
		formatFloat(r.Utility),
		r.StartTime,
		r.EndTime,
		formatFloat(r.DurationMs),
		strconv.Itoa(r.TotalMoves),
	}
}

type moveRow struct {
	Game         int     `parquet:"game"`
	Step         int     `parquet:"step"`
	Player       int     `parquet:"player"`
	Action       string  `parquet:"action"`
	Searcher     string  `parquet:"searcher,dict"`
	Goroutines   int     `parquet:"goroutines"`
	DurationMs   float64 `parquet:"duration_ms"`
	Rollouts     int     `parquet:"rollouts"`
	Cutoff       int     `parquet:"cutoff"`
	Depth        int     `parquet:"depth"`
	Nodes        int     `parquet:"nodes"`
	FullPlayouts int     `parquet:"full_playouts"`
}

var moveHeader = []string{"game", "step", "player", "action", "searcher", "goroutines", "duration_ms", "rollouts", "cutoff", "depth", "nodes", "full_playouts"}

func (r moveRow) values() []string {
	return []string{
		strconv.Itoa(r.Game),
		strconv.Itoa(r.Step),
		strconv.Itoa(r.Player),
		r.Action,
		r.Searcher,
		strconv.Itoa(r.Goroutines),
		formatFloat(r.DurationMs),
		strconv.Itoa(r.Rollouts),
		strconv.Itoa(r.Cutoff),
		strconv.Itoa(r.Depth),
		strconv.Itoa(r.Nodes),
		strconv.Itoa(r.FullPlayouts),
	}
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([]agentRow, len(configs))
	for i, c := range configs {
		rows[i] = agentRow(c)
	}
	if err := write(w, "agent_configs", agentHeader, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([]gameRow, len(records))
	for i, r := range records {
		rows[i] = gameRow{
			ID:             r.ID,
			Agent1:         r.Agent1,
			Agent2:         r.Agent2,
			StartingPlayer: r.StartingPlayer,
			Winner:         r.Winner,
			Utility:        r.Utility,
			StartTime:      r.StartTime.Format(time.RFC3339Nano),
			EndTime:        r.EndTime.Format(time.RFC3339Nano),
			DurationMs:     milliseconds(r.Duration),
			TotalMoves:     r.TotalMoves,
		}
	}
	if err := write(w, "game_records", gameHeader, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]moveRow, len(records))
	for i, r := range records {
		rows[i] = moveRow{
			Game:         r.Game,
			Step:         r.Step,
			Player:       r.Player,
			Action:       r.Action,
			Searcher:     r.Searcher,
			Goroutines:   r.Goroutines,
			DurationMs:   milliseconds(r.Duration),
			Rollouts:     r.Rollouts,
			Cutoff:       r.Cutoff,
			Depth:        r.Depth,
			Nodes:        r.Nodes,
			FullPlayouts: r.FullPlayouts,
		}
	}
	if err := write(w, "move_records", moveHeader, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

type row interface {
	values() []string
}

func write[T row](w *Writer, table string, header []string, rows []T) error {
	path := filepath.Join(w.baseDir, table+"."+w.format)
	if w.format == FormatParquet {
		return parquet.WriteFile(path, rows,
			parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
			parquet.KeyValueMetadata("table", table),
		)
	}
	return writeCSV(path, header, rows)
}

func writeCSV[T row](path string, header []string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Write each row
	for _, r := range rows {
		if err := writer.Write(r.values()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
