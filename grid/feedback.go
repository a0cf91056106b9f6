package grid

import "github.com/kjartansson/shearbox/geom"

// FeedbackField is a Mesh-sized field of 3-vectors accumulating the
// momentum grains deposit onto each cell during a step. It is cleared at
// step start and read by the gas update once the integrator returns.
type FeedbackField struct {
	g     *geom.Grid
	cells [][3]float64
}

// NewFeedbackField allocates a feedback buffer sized to m.
func NewFeedbackField(m *Mesh) *FeedbackField {
	g := geom.NewGrid([3]int{0, 0, 0}, [3]int{m.N1, m.N2, m.N3})
	return &FeedbackField{g: g, cells: make([][3]float64, g.Volume)}
}

// Clear zeroes the entire buffer.
func (fb *FeedbackField) Clear() {
	for i := range fb.cells {
		fb.cells[i] = [3]float64{}
	}
}

// Add deposits momentum-density v into cell (i, j, k). A cell outside the
// mesh is ignored, so the deposit is dropped rather than causing a panic.
func (fb *FeedbackField) Add(i, j, k int, v [3]float64) {
	idx, ok := fb.g.IdxCheck(i, j, k)
	if !ok {
		return
	}
	c := &fb.cells[idx]
	c[0] += v[0]
	c[1] += v[1]
	c[2] += v[2]
}

// At returns the accumulated momentum-density in cell (i, j, k).
func (fb *FeedbackField) At(i, j, k int) [3]float64 {
	idx, ok := fb.g.IdxCheck(i, j, k)
	if !ok {
		return [3]float64{}
	}
	return fb.cells[idx]
}

// Sum returns the total deposited momentum-density over every cell, the
// quantity the feedback-conservation property test compares against the
// total drag impulse experienced by all grains.
func (fb *FeedbackField) Sum() [3]float64 {
	var s [3]float64
	for _, c := range fb.cells {
		s[0] += c[0]
		s[1] += c[1]
		s[2] += c[2]
	}
	return s
}
