package integrator

import (
	"math"

	"github.com/kjartansson/shearbox/force"
	"github.com/kjartansson/shearbox/grain"
	"github.com/kjartansson/shearbox/grid"
)

// Predictor accumulates the predictor-phase momentum feedback (§4.6, first
// half) for every live grain, using the gas state and grain positions at the
// start of the step — before any integrator has touched them. It refreshes
// the gas collaborator's derived caches once, clears the feedback sink, then
// visits every grain.
//
// The stopping time here is clamped to at least dt, not its raw collaborator
// value: a grain whose true stopping time is much shorter than dt would
// otherwise dump an enormous predictor-phase force into one cell, an
// artifact of splitting drag feedback across the predictor and corrector
// phases rather than a physical effect.
func Predictor(m *grid.Mesh, arr *grain.Array, d Deps) {
	if !m.Feedback {
		return
	}
	species := arr.Species()

	d.Gas.RefreshGasInfo(m)
	d.FB.Clear(m)

	for p := 0; p < arr.NumParticle(); p++ {
		g := arr.At(p)
		if g.Pos == grain.StatusGhost {
			continue
		}
		st := d.Gas.WeightStencil(m, g.X1, g.X2, g.X3)
		rho, u1, u2, u3, cs, ok := d.Gas.GasValues(m, st)
		if !ok {
			continue
		}
		d.Gas.VelocityShift(g.X1, g.X2, g.X3, &u1, &u2, &u3)

		vd := grain.Vector{X1: u1 - g.V1, X2: u2 - g.V2, X3: u3 - g.V3}
		mag := math.Sqrt(vd.X1*vd.X1 + vd.X2*vd.X2 + vd.X3*vd.X3)

		ts := d.Stop.StoppingTime(m, g.Species, rho, cs, mag)
		if ts < m.Dt {
			ts = m.Dt
		}
		ts1h := 0.5 * m.Dt / ts

		mass := species[g.Species].M
		fb := vd.Scale(mass * ts1h)

		d.FB.Distribute(m, st, [3]float64{fb.X1, fb.X2, fb.X3})
	}
}

// correctorStep accumulates one grain's corrector-phase feedback (§4.6,
// second half) after an integrator has computed its velocity increment dv.
// It evaluates the non-drag force at the step's midpoint state and deposits
// the residual (dv minus the non-drag contribution already accounted for by
// the explicit part of the scheme), scaled by grain mass, back onto the gas.
//
// In 3D, non-FARGO shearing-box mode the deposit is mirrored one column over
// via DistributeShear, matching the radial neighbour the shear remap will
// move this momentum to before the next step.
func correctorStep(m *grid.Mesh, species []grain.Species, d Deps, g *grain.Grain, x, v, xNew, vNew, dv grain.Vector) {
	if !m.Feedback {
		return
	}

	mid := grain.Vector{
		X1: 0.5 * (x.X1 + xNew.X1),
		X2: 0.5 * (x.X2 + xNew.X2),
		X3: 0.5 * (x.X3 + xNew.X3),
	}
	vmid := grain.Vector{
		X1: 0.5 * (v.X1 + vNew.X1),
		X2: 0.5 * (v.X2 + vNew.X2),
		X3: 0.5 * (v.X3 + vNew.X3),
	}

	fr := force.On(m, mid, vmid)
	fb := dv.Add(fr.Scale(-m.Dt)).Scale(species[g.Species].M)

	st := d.Gas.WeightStencil(m, mid.X1, mid.X2, mid.X3)
	d.FB.Distribute(m, st, [3]float64{fb.X1, fb.X2, fb.X3})

	if m.ShearingBox && !m.Fargo && m.Dim3D() {
		d.FB.DistributeShear(m, st, [3]float64{fb.X1, fb.X2, fb.X3})
	}
}
