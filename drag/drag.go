package drag

import (
	"log"
	"math"

	"github.com/kjartansson/shearbox/grain"
	"github.com/kjartansson/shearbox/grid"
)

// Result carries the drag force and inverse stopping time §4.2 returns.
type Result struct {
	F     grain.Vector
	InvTs float64
}

// At computes the linear drag on a grain of the given species at (x, v):
//
//  1. locate the cell containing x and its interpolation stencil;
//  2. sample the gas state there; if the point is out of the integrable
//     region, log a warning and return free motion (F = 0, 1/ts = 0);
//  3. apply the frame correction to the sampled gas velocity;
//  4. form dv = v - u and its Euclidean norm;
//  5. obtain ts from the stopping-time collaborator and return
//     F = -dv/ts, 1/ts.
func At(
	m *grid.Mesh, gas GasField, stop StoppingTime,
	species int, x, v grain.Vector,
	logger *log.Logger,
) Result {
	st := gas.WeightStencil(m, x.X1, x.X2, x.X3)
	rho, u1, u2, u3, cs, ok := gas.GasValues(m, st)
	if !ok {
		if logger != nil {
			logger.Printf("drag: grain out of integrable region at (%g, %g, %g)", x.X1, x.X2, x.X3)
		}
		return Result{}
	}

	gas.VelocityShift(x.X1, x.X2, x.X3, &u1, &u2, &u3)

	dv := grain.Vector{X1: v.X1 - u1, X2: v.X2 - u2, X3: v.X3 - u3}
	mag := math.Sqrt(dv.X1*dv.X1 + dv.X2*dv.X2 + dv.X3*dv.X3)

	ts := stop.StoppingTime(m, species, rho, cs, mag)
	invTs := 1.0 / ts

	return Result{
		F:     grain.Vector{X1: -invTs * dv.X1, X2: -invTs * dv.X2, X3: -invTs * dv.X3},
		InvTs: invTs,
	}
}

// ConstantStopping is the simplest StoppingTime collaborator: every grain
// of a species relaxes with that species' DragParam taken directly as the
// stopping time, independent of the local gas state.
type ConstantStopping struct {
	Species []grain.Species
}

func (c ConstantStopping) StoppingTime(m *grid.Mesh, species int, rho, cs, dv float64) float64 {
	return c.Species[species].DragParam
}
