// Package sptable loads the per-species property table (grain mass and drag
// parameter, one row per species) from a plain-text column file, the same
// way the corpus's halo catalog reader pulls named columns out of a table
// with github.com/phil-mansfield/table.
package sptable

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/kjartansson/shearbox/grain"
)

const (
	massCol      = 0
	dragParamCol = 1
)

// Read loads a species table: one row per species, column 0 the grain
// mass and column 1 the drag parameter (a stopping time for
// drag.ConstantStopping, or whatever unit the run's StoppingTime
// collaborator expects).
func Read(file string) ([]grain.Species, error) {
	cols, err := table.ReadTable(file, []int{massCol, dragParamCol}, nil)
	if err != nil {
		return nil, err
	}
	masses, dragParams := cols[0], cols[1]
	if len(masses) == 0 {
		return nil, fmt.Errorf("sptable: %s contains no species rows", file)
	}

	species := make([]grain.Species, len(masses))
	for i := range species {
		if masses[i] <= 0 {
			return nil, fmt.Errorf("sptable: %s row %d: mass must be positive, got %g", file, i, masses[i])
		}
		species[i] = grain.Species{M: masses[i], DragParam: dragParams[i]}
	}
	return species, nil
}
