// Package integrator implements the three second-order particle
// integrators (explicit, semi-implicit, fully-implicit), the momentum
// feedback accumulator, and the ghost purge that must run before each of
// them. See SPEC_FULL.md §4 for the governing equations.
package integrator

import (
	"log"

	"github.com/kjartansson/shearbox/drag"
	"github.com/kjartansson/shearbox/force"
	"github.com/kjartansson/shearbox/grain"
	"github.com/kjartansson/shearbox/grid"
)

// Deps bundles the collaborators every integrator entry point needs.
// Logger may be nil, in which case diagnostics are discarded.
type Deps struct {
	Gas    drag.GasField
	Stop   drag.StoppingTime
	FB     drag.FeedbackSink
	Logger *log.Logger
}

func (d Deps) logf(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

// totalForce evaluates drag + non-drag force at (x, v) for the given
// species, returning the combined force and 1/ts.
func totalForce(
	m *grid.Mesh, gas drag.GasField, stop drag.StoppingTime,
	species int, x, v grain.Vector, logger *log.Logger,
) (grain.Vector, float64) {
	d := drag.At(m, gas, stop, species, x, v, logger)
	fr := force.On(m, x, v)
	return d.F.Add(fr), d.InvTs
}

// axes bundles the per-axis active flags so call sites read a1/a2/a3
// instead of re-deriving them from m.Active() at every site.
type axes struct {
	a1, a2, a3 bool
}

func activeAxes(m *grid.Mesh) axes {
	a1, a2, a3 := m.Active()
	return axes{a1, a2, a3}
}

// commit is the single place every integrator applies the "collapsed axis"
// rule: an inactive axis keeps its pre-step position and velocity exactly,
// active axes get the velocity increment dv and the trapezoidal position
// update x + 0.5*dt*(v+vNew). Centralising this (per the design note that a
// clean implementation reads the active flag once and applies it uniformly,
// rather than scattering the conditional into every update) means the
// three integrators differ only in how they compute dv.
func commit(m *grid.Mesh, ax axes, x, v, dv grain.Vector) (xNew, vNew grain.Vector) {
	vNew = v
	xNew = x
	if ax.a1 {
		vNew.X1 = v.X1 + dv.X1
		xNew.X1 = x.X1 + 0.5*m.Dt*(v.X1+vNew.X1)
	}
	if ax.a2 {
		vNew.X2 = v.X2 + dv.X2
		xNew.X2 = x.X2 + 0.5*m.Dt*(v.X2+vNew.X2)
	}
	if ax.a3 {
		vNew.X3 = v.X3 + dv.X3
		xNew.X3 = x.X3 + 0.5*m.Dt*(v.X3+vNew.X3)
	}
	return xNew, vNew
}

// applyFargoShift records the azimuthal advection FARGO will apply
// downstream: shift = -3/2 * Omega * x1 * dt, evaluated at the step's
// midpoint x1.
func applyFargoShift(m *grid.Mesh, g *grain.Grain, x1New float64) {
	if !m.Fargo {
		return
	}
	g.Shift = -0.75 * m.Omega * (g.X1 + x1New) * m.Dt
}

// tagBoundary marks a grain StatusCrossedOut if any active, non-exempt axis
// left the live region [lo, hi). In FARGO mode the azimuthal axis (x2 in
// 3D, x3 in 2D) is exempt: the FARGO remap naturally re-enters it.
func tagBoundary(m *grid.Mesh, ax axes, g *grain.Grain) {
	exempt2 := m.Fargo && m.Dim3D()
	exempt3 := m.Fargo && !m.Dim3D()

	out := false
	if ax.a1 && (g.X1 >= m.X1Hi || g.X1 < m.X1Lo) {
		out = true
	}
	if ax.a2 && !exempt2 && (g.X2 >= m.X2Hi || g.X2 < m.X2Lo) {
		out = true
	}
	if ax.a3 && !exempt3 && (g.X3 >= m.X3Hi || g.X3 < m.X3Lo) {
		out = true
	}
	if out {
		g.Pos = grain.StatusCrossedOut
	}
}

// shearAdvection returns the second-order correction subtracted from the
// x2 position predictor in 3D non-FARGO shearing-box mode, accounting for
// the bulk shear advection the predictor itself does not capture. coeff is
// 0.1875 for the half-dt predictors (explicit, semi-implicit) and 0.75 for
// the full-dt predictor (fully-implicit).
func shearAdvection(m *grid.Mesh, v1, coeff float64) float64 {
	if m.ShearingBox && m.Dim3D() && !m.Fargo {
		return coeff * v1 * m.Dt * m.Dt
	}
	return 0
}
