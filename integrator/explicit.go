package integrator

import (
	"github.com/kjartansson/shearbox/grain"
	"github.com/kjartansson/shearbox/grid"
)

// Explicit advances every live grain by one step using the explicit
// predictor-corrector (§4.3): half-dt predictors for both position and
// velocity, a second force evaluation at the predicted state, and a
// full-dt velocity update from that predicted force. Both drag and the
// shearing-box force are treated explicitly, so the scheme is only
// conditionally stable — the caller is responsible for keeping dt well
// below the stopping time.
//
// Explicit purges ghosts before touching any live grain, per §4.7: a ghost
// purge is the mandatory first step of every integrator entry point.
func Explicit(m *grid.Mesh, arr *grain.Array, d Deps) {
	arr.PurgeGhosts()
	ax := activeAxes(m)

	for p := 0; p < arr.NumParticle(); p++ {
		g := arr.At(p)
		x := grain.Vector{X1: g.X1, X2: g.X2, X3: g.X3}
		v := grain.Vector{X1: g.V1, X2: g.V2, X3: g.V3}

		xp := grain.Vector{
			X1: x.X1 + 0.5*m.Dt*v.X1,
			X2: x.X2 + 0.5*m.Dt*v.X2 - shearAdvection(m, v.X1, 0.1875),
			X3: x.X3 + 0.5*m.Dt*v.X3,
		}

		f0, _ := totalForce(m, d.Gas, d.Stop, g.Species, x, v, d.Logger)
		vp := v.Add(f0.Scale(0.5 * m.Dt))

		f1, _ := totalForce(m, d.Gas, d.Stop, g.Species, xp, vp, d.Logger)
		dv := f1.Scale(m.Dt)

		xNew, vNew := commit(m, ax, x, v, dv)
		correctorStep(m, arr.Species(), d, g, x, v, xNew, vNew, dv)
		applyFargoShift(m, g, xNew.X1)

		g.X1, g.X2, g.X3 = xNew.X1, xNew.X2, xNew.X3
		g.V1, g.V2, g.V3 = vNew.X1, vNew.X2, vNew.X3
		tagBoundary(m, ax, g)
	}
}
