// Package force computes the non-drag force on a grain: the shearing-sheet
// Coriolis and tidal terms, plus vertical gravity, in both the 3D (X,Y,Z)
// and 2D (X,Z,Y) conventions. It is pure — no side effects, no state beyond
// the Mesh it reads Omega and the physics flags from.
package force

import (
	"github.com/kjartansson/shearbox/grain"
	"github.com/kjartansson/shearbox/grid"
)

// On returns the non-drag force per unit mass on a grain at (x, v).
//
// Without the shearing box this is identically zero. With it:
//
//   - 3D (axes X, Y, Z): F1 += 2*Omega*v2 + (non-FARGO) 3*Omega^2*x1;
//     F2 += (FARGO) -0.5*Omega*v1 or (non-FARGO) -2*Omega*v1.
//     With vertical gravity: F3 += -Omega^2*x3.
//   - 2D (axes X, Z, Y — x3 is azimuth): F1 += 3*Omega^2*x1 + 2*Omega*v3;
//     F3 += -2*Omega*v1. With vertical gravity: F2 += -Omega^2*x2.
func On(m *grid.Mesh, x grain.Vector, v grain.Vector) grain.Vector {
	var f grain.Vector
	if !m.ShearingBox {
		return f
	}

	omega := m.Omega
	omega2 := omega * omega

	if m.Dim3D() {
		if m.Fargo {
			f.X1 += 2.0 * v.X2 * omega
			f.X2 += -0.5 * v.X1 * omega
		} else {
			f.X1 += 3.0*omega2*x.X1 + 2.0*v.X2*omega
			f.X2 += -2.0 * v.X1 * omega
		}
		if m.VerticalGravity {
			f.X3 += -omega2 * x.X3
		}
	} else {
		f.X1 += 3.0*omega2*x.X1 + 2.0*v.X3*omega
		f.X3 += -2.0 * v.X1 * omega
		if m.VerticalGravity {
			f.X2 += -omega2 * x.X2
		}
	}

	return f
}
