package store

import (
	"encoding/json"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/philipparndt/circles/pkg/geometry"
	"github.com/philipparndt/circles/pkg/montecarlo"
	"github.com/spf13/afero"
)

// LoadPointSet reads a point set stored as a JSON list of [x, y] pairs
func LoadPointSet(fs afero.Fs, path string) ([]geometry.Point, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return ParsePointSet(data)
}

// ParsePointSet decodes a JSON list of [x, y] pairs
func ParsePointSet(data []byte) ([]geometry.Point, error) {
	var pairs [][]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "point set must be a list of [x, y] pairs"), montecarlo.ErrInvalidArgument)
	}
	return decodePoints(pairs)
}

// SavePointSet writes points as a JSON list of [x, y] pairs
func SavePointSet(fs afero.Fs, path string, points []geometry.Point) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}
	data, err := json.Marshal(encodePoints(points))
	if err != nil {
		return errors.Wrap(err, "failed to encode point set")
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func encodePoints(points []geometry.Point) [][]float64 {
	pairs := make([][]float64, len(points))
	for i, p := range points {
		pairs[i] = []float64{p.X, p.Y}
	}
	return pairs
}

func decodePoints(pairs [][]float64) ([]geometry.Point, error) {
	points := make([]geometry.Point, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, errors.Mark(errors.Newf("point %d has %d coordinates, want 2", i, len(pair)), montecarlo.ErrInvalidArgument)
		}
		points[i] = geometry.NewPoint(pair[0], pair[1])
	}
	return points, nil
}
