// Package gasfield supplies one concrete, testable implementation of the
// drag.GasField and drag.FeedbackSink collaborators: a uniform structured
// mesh sampled with a triangular-shaped-cloud (TSC) weight stencil. It is a
// stand-in for the real MHD solver's interpolation kernels, used by the
// integrator's own tests and by cmd/shearstep.
package gasfield

import (
	"math"

	"github.com/kjartansson/shearbox/drag"
	"github.com/kjartansson/shearbox/geom"
	"github.com/kjartansson/shearbox/grid"
)

// cell holds the gas state Athena calls (rho, u1, u2, u3, cs).
type cell struct {
	rho, u1, u2, u3, cs float64
}

// Uniform is a Mesh-sized gas field sampled by TSC interpolation, doubling
// as the corresponding momentum-feedback sink.
type Uniform struct {
	g     *geom.Grid
	cells []cell
	fb    *grid.FeedbackField

	// ShiftU1 is the reference implementation's frame-correction hook: a
	// constant background drift added to the sampled x1 gas velocity,
	// standing in for the steady pressure-gradient-induced drift a real
	// problem generator would impose.
	ShiftU1 float64
}

// NewUniform allocates a gas field and feedback buffer sized to m.
func NewUniform(m *grid.Mesh) *Uniform {
	g := geom.NewGrid([3]int{0, 0, 0}, [3]int{m.N1, m.N2, m.N3})
	return &Uniform{
		g:     g,
		cells: make([]cell, g.Volume),
		fb:    grid.NewFeedbackField(m),
	}
}

// Fill sets every cell to the same (rho, u1, u2, u3, cs), the common case
// for the property tests, which want a spatially uniform background gas.
func (u *Uniform) Fill(rho, u1, u2, u3, cs float64) {
	c := cell{rho, u1, u2, u3, cs}
	for i := range u.cells {
		u.cells[i] = c
	}
}

// Set overwrites the gas state in a single cell.
func (u *Uniform) Set(i, j, k int, rho, u1, u2, u3, cs float64) {
	idx, ok := u.g.IdxCheck(i, j, k)
	if !ok {
		return
	}
	u.cells[idx] = cell{rho, u1, u2, u3, cs}
}

// Feedback returns the underlying feedback buffer, e.g. for the
// conservation property test to sum after a step.
func (u *Uniform) Feedback() *grid.FeedbackField { return u.fb }

// axisStencil computes the TSC weight triple and clamped stencil origin
// along one axis. The stencil's middle weight (index 1) always lands on
// origin+1, so a collapsed axis (n == 1) reports its single cell as
// origin -1, not 0. A collapsed axis always resolves to a single point of
// unit weight and ignores x entirely. inDomain is false whenever the
// coordinate falls outside [0, n*dx) on an active axis.
func axisStencil(n int, dx, x float64) (origin int, w [3]float64, inDomain bool) {
	if n <= 1 {
		return -1, [3]float64{0, 1, 0}, true
	}
	if x < 0 || x >= float64(n)*dx {
		return 0, [3]float64{}, false
	}
	if n < 3 {
		// Too few cells for a 3-wide TSC window: fall back to a
		// nearest-cell stencil, same as the collapsed case above.
		idx := int(math.Floor(x / dx))
		if idx > n-1 {
			idx = n - 1
		}
		return idx - 1, [3]float64{0, 1, 0}, true
	}

	c := x/dx - 0.5
	i0 := int(math.Round(c))
	s := c - float64(i0)

	w = [3]float64{
		0.5 * (0.5 - s) * (0.5 - s),
		0.75 - s*s,
		0.5 * (0.5 + s) * (0.5 + s),
	}

	origin = i0 - 1
	if origin < 0 {
		origin = 0
	}
	if origin > n-3 {
		origin = n - 3
	}
	return origin, w, true
}

// WeightStencil implements drag.GasField.
func (u *Uniform) WeightStencil(m *grid.Mesh, x1, x2, x3 float64) drag.Stencil {
	i0, w1, ok1 := axisStencil(m.N1, m.Dx1, x1)
	j0, w2, ok2 := axisStencil(m.N2, m.Dx2, x2)
	k0, w3, ok3 := axisStencil(m.N3, m.Dx3, x3)

	var st drag.Stencil
	st.I, st.J, st.K = i0, j0, k0
	st.InDomain = ok1 && ok2 && ok3
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				st.Weights[a][b][c] = w1[a] * w2[b] * w3[c]
			}
		}
	}
	return st
}

// GasValues implements drag.GasField.
func (u *Uniform) GasValues(m *grid.Mesh, st drag.Stencil) (rho, u1, u2, u3, cs float64, ok bool) {
	if !st.InDomain {
		return 0, 0, 0, 0, 0, false
	}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				wt := st.Weights[a][b][c]
				if wt == 0 {
					continue
				}
				idx, in := u.g.IdxCheck(st.I+a, st.J+b, st.K+c)
				if !in {
					continue
				}
				cl := u.cells[idx]
				rho += wt * cl.rho
				u1 += wt * cl.u1
				u2 += wt * cl.u2
				u3 += wt * cl.u3
				cs += wt * cl.cs
			}
		}
	}
	return rho, u1, u2, u3, cs, true
}

// VelocityShift implements drag.GasField.
func (u *Uniform) VelocityShift(x1, x2, x3 float64, u1, u2, u3 *float64) {
	*u1 += u.ShiftU1
}

// RefreshGasInfo implements drag.GasField. Uniform's gas state has no
// derived caches, so this is a no-op.
func (u *Uniform) RefreshGasInfo(m *grid.Mesh) {}

// Clear implements drag.FeedbackSink.
func (u *Uniform) Clear(m *grid.Mesh) { u.fb.Clear() }

// Distribute implements drag.FeedbackSink.
func (u *Uniform) Distribute(m *grid.Mesh, st drag.Stencil, fbv [3]float64) {
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				wt := st.Weights[a][b][c]
				if wt == 0 {
					continue
				}
				u.fb.Add(st.I+a, st.J+b, st.K+c, [3]float64{
					wt * fbv[0], wt * fbv[1], wt * fbv[2],
				})
			}
		}
	}
}

// DistributeShear implements drag.FeedbackSink: it re-deposits the same
// momentum one cell over in x1, the radially-neighbouring azimuthal column
// the 3D non-FARGO shearing box uses to keep deposition consistent with the
// grain's true azimuthal position after the shear remap. This is a
// simplified stand-in: the original source (distrFB_shear) splits the
// deposit by the fractional shear distance instead of shifting a whole
// cell, which this collaborator does not model.
func (u *Uniform) DistributeShear(m *grid.Mesh, st drag.Stencil, fbv [3]float64) {
	shifted := st
	shifted.I++
	u.Distribute(m, shifted, fbv)
}
