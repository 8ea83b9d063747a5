package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/sim"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
	finalFile      = "final.cells"
	patternsDir    = "patterns"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(filepath.Join(s.baseDir, patternsDir), 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID          string             `json:"id"`
	Pattern     string             `json:"pattern"`
	Rule        string             `json:"rule"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Generations int                `json:"generations"`
	Wrap        bool               `json:"wrap"`
	Stable      bool               `json:"stable"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes a run directory and returns its id. meta.ID and
// meta.Timestamp are filled in; the remaining fields are taken as given.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := s.now()
	meta.Timestamp = now
	meta.ID = s.uniqueID(fmt.Sprintf("%s_%d", sanitize(meta.Pattern), now.Unix()))
	meta.Generations = result.Generations
	meta.Stable = result.Stable
	meta.Metrics = result.Metrics
	if result.Final != nil {
		meta.Width, meta.Height = result.Final.Width(), result.Final.Height()
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writePopulation(filepath.Join(runDir, populationFile), result.Populations); err != nil {
		return "", err
	}
	if result.Final != nil {
		data := boardPattern(meta.ID, result.Final).Format()
		if err := os.WriteFile(filepath.Join(runDir, finalFile), []byte(data), 0644); err != nil {
			return "", err
		}
	}
	return meta.ID, nil
}

func (s *Store) uniqueID(base string) string {
	id := base
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(s.baseDir, id)); os.IsNotExist(err) {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePopulation(path string, pops []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"generation", "population"}); err != nil {
		return err
	}
	for gen, p := range pops {
		if err := w.Write([]string{strconv.Itoa(gen), strconv.Itoa(p)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns stored runs, newest first. Directories without readable
// metadata are skipped.
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
		if !entry.IsDir() || entry.Name() == patternsDir {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID > runs[j].ID
		}
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("run %s: %w", runID, ErrNotFound)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// LoadPopulation returns the live-cell count per generation.
func (s *Store) LoadPopulation(runID string) ([]int, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("run %s population: %w", runID, ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []int{}, nil
	}

	pops := make([]int, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 2 {
			return nil, fmt.Errorf("population row %d: expected 2 fields, got %d", i+1, len(record))
		}
		p, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("population row %d: %w", i+1, err)
		}
		pops = append(pops, p)
	}
	return pops, nil
}

// LoadFinal returns the last board of a run at its full size.
func (s *Store) LoadFinal(runID string) (*life.Board, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, finalFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("run %s final board: %w", runID, ErrNotFound)
		}
		return nil, err
	}
	p, err := life.ParseCells(string(data))
	if err != nil {
		return nil, err
	}
	return p.Board(), nil
}

// SavePattern stores p under patterns/<name>.cells.
func (s *Store) SavePattern(p *life.Pattern) (string, error) {
	name := sanitize(p.Name)
	if name == "" {
		return "", errors.New("pattern needs a name")
	}
	dir := filepath.Join(s.baseDir, patternsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+".cells")
	return path, os.WriteFile(path, []byte(p.Format()), 0644)
}

func (s *Store) LoadPattern(name string) (*life.Pattern, error) {
	path := filepath.Join(s.baseDir, patternsDir, sanitize(name)+".cells")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("pattern %s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	p, err := life.ParseCells(string(data))
	if err != nil {
		return nil, fmt.Errorf("pattern %s: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

// ListPatterns returns the names of saved patterns.
func (s *Store) ListPatterns() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.baseDir, patternsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".cells"); ok && !e.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// boardPattern keeps the board's full extent so dead margins survive.
func boardPattern(name string, b *life.Board) *life.Pattern {
	p := &life.Pattern{Name: name, Width: b.Width(), Height: b.Height()}
	b.Each(func(x, y int) {
		p.Cells = append(p.Cells, [2]int{x, y})
	})
	return p
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func sanitize(name string) string {
	return strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(name), "_"), "_")
}
