package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/philipparndt/circles/pkg/geometry"
	"github.com/philipparndt/circles/pkg/montecarlo"
	"github.com/spf13/afero"
)

// Store reads and writes Monte-Carlo results in a directory
type Store struct {
	fs  afero.Fs
	dir string
}

// New creates a store rooted at dir on the given file system
func New(fs afero.Fs, dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{fs: fs, dir: dir}
}

// NewOS creates a store on the operating system's file system
func NewOS(dir string) *Store {
	return New(afero.NewOsFs(), dir)
}

// Dir returns the directory the store writes to
func (s *Store) Dir() string {
	return s.dir
}

// ResultFile is the name of the frequency file for a run of n trials
func ResultFile(n int) string {
	return fmt.Sprintf("result_%d.json", n)
}

// ExamplesFile is the name of the example point set file for a run of n trials
func ExamplesFile(n int) string {
	return fmt.Sprintf("example_points_%d.json", n)
}

// SaveHistogram writes result_<n>.json and example_points_<n>.json where n
// is the histogram's trial count. It returns the paths written.
func (s *Store) SaveHistogram(h *montecarlo.Histogram) ([]string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", s.dir)
	}

	counts := make(map[string]int, len(h.Counts))
	for k, freq := range h.Counts {
		counts[strconv.Itoa(k)] = freq
	}
	examples := make(map[string][][]float64, len(h.Examples))
	for k, pts := range h.Examples {
		examples[strconv.Itoa(k)] = encodePoints(pts)
	}

	resultPath := filepath.Join(s.dir, ResultFile(h.Trials))
	if err := s.writeJSON(resultPath, counts); err != nil {
		return nil, err
	}
	examplesPath := filepath.Join(s.dir, ExamplesFile(h.Trials))
	if err := s.writeJSON(examplesPath, examples); err != nil {
		return nil, err
	}
	return []string{resultPath, examplesPath}, nil
}

// LoadCounts reads result_<n>.json
func (s *Store) LoadCounts(n int) (map[int]int, error) {
	var raw map[string]int
	if err := s.readJSON(filepath.Join(s.dir, ResultFile(n)), &raw); err != nil {
		return nil, err
	}
	counts := make(map[int]int, len(raw))
	for key, freq := range raw {
		k, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		counts[k] = freq
	}
	return counts, nil
}

// LoadExamples reads example_points_<n>.json
func (s *Store) LoadExamples(n int) (map[int][]geometry.Point, error) {
	path := filepath.Join(s.dir, ExamplesFile(n))
	var raw map[string][][]float64
	if err := s.readJSON(path, &raw); err != nil {
		return nil, err
	}
	examples := make(map[int][]geometry.Point, len(raw))
	for key, pairs := range raw {
		k, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		pts, err := decodePoints(pairs)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: key %q", path, key)
		}
		examples[k] = pts
	}
	return examples, nil
}

// LoadHistogram reads both files of a run of n trials back into a histogram
func (s *Store) LoadHistogram(n int) (*montecarlo.Histogram, error) {
	counts, err := s.LoadCounts(n)
	if err != nil {
		return nil, err
	}
	examples, err := s.LoadExamples(n)
	if err != nil {
		return nil, err
	}

	h := montecarlo.NewHistogram()
	h.Counts = counts
	h.Examples = examples
	h.Trials = h.Total()
	return h, nil
}

// SortedKeys returns the keys of an examples map in ascending order
func SortedKeys(examples map[int][]geometry.Point) []int {
	keys := make([]int, 0, len(examples))
	for k := range examples {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (s *Store) writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func (s *Store) readJSON(path string, v any) error {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Mark(errors.Wrapf(err, "no results at %s", path), montecarlo.ErrInvalidArgument)
		}
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to parse %s", path), montecarlo.ErrInvalidArgument)
	}
	return nil
}

func parseKey(key string) (int, error) {
	k, err := strconv.Atoi(key)
	if err != nil || k < 0 {
		return 0, errors.Mark(errors.Newf("invalid valid-circle count key %q", key), montecarlo.ErrInvalidArgument)
	}
	return k, nil
}
