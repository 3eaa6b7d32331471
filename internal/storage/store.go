// Package storage persists effective-interaction runs as plain files: one
// directory per run holding metadata.json and, for truncation sweeps, a
// series.csv with the convergence history.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/spinrad/internal/experiment"
)

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
	ID        string             `json:"id"`
	Shape     string             `json:"shape"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params"`
	Omega     float64            `json:"omega"`
	Gamma     float64            `json:"gamma"`
	SweepMax  int                `json:"sweep_max,omitempty"`
}

// ParamsMap flattens shape parameters for the run metadata.
func ParamsMap(p experiment.Params) map[string]float64 {
	return map[string]float64{
		"a":        p.A,
		"b":        p.B,
		"c":        p.C,
		"theta":    p.Theta,
		"vertices": float64(p.Vertices),
		"n":        float64(p.N),
	}
}

// Save stores one run. For sweeps, points holds the convergence series and
// omega/gamma are the values at the largest truncation; for finite shapes
// points is nil.
func (s *Store) Save(shape string, params map[string]float64, omega, gamma float64, points []experiment.SweepPoint) (string, error) {
	runID := fmt.Sprintf("%s_%d", shape, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Shape:     shape,
		Timestamp: time.Now(),
		Params:    params,
		Omega:     omega,
		Gamma:     gamma,
		SweepMax:  len(points),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if len(points) == 0 {
		return runID, nil
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"n", "omega", "gamma", "delta_omega", "delta_gamma"}); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.N),
			strconv.FormatFloat(p.Omega, 'g', -1, 64),
			strconv.FormatFloat(p.Gamma, 'g', -1, 64),
			strconv.FormatFloat(p.DeltaOmega, 'g', -1, 64),
			strconv.FormatFloat(p.DeltaGamma, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads back the convergence series of a sweep run.
func (s *Store) LoadSeries(runID string) ([]experiment.SweepPoint, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []experiment.SweepPoint{}, nil
	}

	points := make([]experiment.SweepPoint, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 5 {
			continue
		}

		n, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for i, s := range record[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}

		points = append(points, experiment.SweepPoint{
			N:          n,
			Omega:      vals[0],
			Gamma:      vals[1],
			DeltaOmega: vals[2],
			DeltaGamma: vals[3],
		})
	}

	return points, nil
}
