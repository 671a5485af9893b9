// Package dataset loads the climate dataset consumed by the pipeline.
//
// The on-disk format is a self-describing JSON container holding one named
// numeric matrix, e.g. {"var": [[precip, temp, doy_sif_par], ...]}. Columns
// are positional: the first two are the features and the last is the label;
// any middle columns are ignored.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/shuozhangthu/SIF-water/pkg/errors"
)

// DefaultField is the container field holding the climate matrix.
const DefaultField = "var"

// minColumns is the loader contract: two feature columns plus a label.
const minColumns = 3

// Load reads the named numeric matrix from the JSON container at path.
//
// A missing field, a non-rectangular matrix or non-numeric content yields a
// DataFormatError; an unreadable file or malformed JSON surfaces the native
// error wrapped with the path.
func Load(path, field string) (*mat.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	var container map[string]json.RawMessage
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	raw, ok := container[field]
	if !ok {
		return nil, errors.NewDataFormatError(path, field, "field not found")
	}

	var rows [][]float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, errors.NewDataFormatError(path, field, "not a 2-D numeric array")
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewDataFormatError(path, field, "empty matrix")
	}

	nCols := len(rows[0])
	flat := make([]float64, 0, len(rows)*nCols)
	for i, row := range rows {
		if len(row) != nCols {
			return nil, errors.NewDataFormatError(path, field,
				fmt.Sprintf("ragged matrix: row %d has %d columns, expected %d", i, len(row), nCols))
		}
		flat = append(flat, row...)
	}

	return mat.NewDense(len(rows), nCols, flat), nil
}

// LoadClimateData loads the climate matrix from path and separates it into
// features and labels.
//
// The returned features matrix has shape (n, 2) holding precipitation and
// temperature; the labels vector holds the last column (DOY_SIF_PAR) in the
// same row order.
func LoadClimateData(path string) (*mat.Dense, *mat.VecDense, error) {
	climate, err := Load(path, DefaultField)
	if err != nil {
		return nil, nil, err
	}

	n, c := climate.Dims()
	if c < minColumns {
		return nil, nil, errors.NewDataFormatError(path, DefaultField,
			fmt.Sprintf("need at least %d columns (precipitation, temperature, label), got %d", minColumns, c))
	}

	features := mat.NewDense(n, 2, nil)
	labels := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		features.Set(i, 0, climate.At(i, 0))
		features.Set(i, 1, climate.At(i, 1))
		labels.SetVec(i, climate.At(i, c-1))
	}

	return features, labels, nil
}
