package integrator

import (
	"github.com/kjartansson/shearbox/grain"
	"github.com/kjartansson/shearbox/grid"
)

// SemiImplicit advances every live grain by one step using the
// semi-implicit midpoint scheme (§4.4): a half-dt position predictor, one
// force evaluation there, and an analytic inversion of the coupled
// drag+Coriolis system that is unconditionally stable in the drag term. The
// tidal and vertical-gravity terms are evaluated once at the predicted
// position and are not part of the inversion.
func SemiImplicit(m *grid.Mesh, arr *grain.Array, d Deps) {
	arr.PurgeGhosts()
	ax := activeAxes(m)
	omega := m.Omega
	oh := omega * m.Dt

	for p := 0; p < arr.NumParticle(); p++ {
		g := arr.At(p)
		x := grain.Vector{X1: g.X1, X2: g.X2, X3: g.X3}
		v := grain.Vector{X1: g.V1, X2: g.V2, X3: g.V3}

		xp := grain.Vector{
			X1: x.X1 + 0.5*m.Dt*v.X1,
			X2: x.X2 + 0.5*m.Dt*v.X2 - shearAdvection(m, v.X1, 0.1875),
			X3: x.X3 + 0.5*m.Dt*v.X3,
		}

		ft, invTs := totalForce(m, d.Gas, d.Stop, g.Species, xp, v, d.Logger)

		b := m.Dt*invTs + 2.0

		var b1, b2 float64
		var dv grain.Vector
		if m.ShearingBox {
			if m.Fargo {
				b1 = 1.0 / (b*b + oh*oh)
			} else {
				b1 = 1.0 / (b*b + 4.0*oh*oh)
			}
			b2 = b * b1

			if m.Dim3D() {
				dv.X1 = m.Dt*2.0*b2*ft.X1 + m.Dt*4.0*oh*b1*ft.X2
				dv.X2 = m.Dt * 2.0 * b2 * ft.X2
				if m.Fargo {
					dv.X2 -= m.Dt * oh * b1 * ft.X1
				} else {
					dv.X2 -= 4.0 * m.Dt * oh * b1 * ft.X1
				}
				dv.X3 = m.Dt * 2.0 * ft.X3 / b
			} else {
				dv.X1 = m.Dt*2.0*b2*ft.X1 + m.Dt*4.0*oh*b1*ft.X3
				dv.X2 = m.Dt * 2.0 * ft.X2 / b
				dv.X3 = m.Dt*2.0*b2*ft.X3 - 4.0*m.Dt*oh*b1*ft.X1
			}
		} else {
			b2 = 1.0 / b
			dv = ft.Scale(2.0 * m.Dt * b2)
		}

		xNew, vNew := commit(m, ax, x, v, dv)
		correctorStep(m, arr.Species(), d, g, x, v, xNew, vNew, dv)
		applyFargoShift(m, g, xNew.X1)

		g.X1, g.X2, g.X3 = xNew.X1, xNew.X2, xNew.X3
		g.V1, g.V2, g.V3 = vNew.X1, vNew.X2, vNew.X3
		tagBoundary(m, ax, g)
	}
}
