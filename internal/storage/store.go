package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/sortviz/internal/sim"
	"github.com/san-kum/sortviz/internal/sorting"
)

// DefaultDir is where runs are kept unless told otherwise.
const DefaultDir = ".sortviz/runs"

// Store keeps one directory per run holding metadata.json and
// sortedness.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string        `json:"id"`
	Algorithm string        `json:"algorithm"`
	Color     string        `json:"color"`
	Timestamp time.Time     `json:"timestamp"`
	Seed      int64         `json:"seed"`
	Bars      int           `json:"bars"`
	Sorted    bool          `json:"sorted"`
	Frames    int           `json:"frames"`
	Stats     sorting.Stats `json:"stats"`
	Elapsed   float64       `json:"elapsed_sec"`
}

// Save writes res and its per-frame sortedness series. It returns the run ID.
func (s *Store) Save(res *sim.Result, color string, seed int64, sortedness []float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", res.Algorithm, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: res.Algorithm,
		Color:     color,
		Timestamp: now,
		Seed:      seed,
		Bars:      len(res.Initial),
		Sorted:    res.Sorted,
		Frames:    res.Frames,
		Stats:     res.Stats,
		Elapsed:   res.Elapsed.Seconds(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "sortedness.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"frame", "sortedness"}); err != nil {
		return "", err
	}
	for i, v := range sortedness {
		if err := w.Write([]string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64)}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every stored run, oldest first. Unreadable runs are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSortedness reads back the series written by Save.
func (s *Store) LoadSortedness(runID string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "sortedness.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []float64{}, nil
	}

	series := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("sortedness.csv: %w", err)
		}
		series = append(series, v)
	}

	return series, nil
}
