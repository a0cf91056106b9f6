// Package drag computes the linear drag force between a grain and the
// background gas, and defines the collaborator interfaces the integrator
// consumes to get there: gas-field interpolation, species-dependent
// stopping time, and feedback deposition.
package drag

import "github.com/kjartansson/shearbox/grid"

// Stencil is the 3x3x3 interpolation weight cube and its origin cell index,
// the contract weight_stencil/gas_values/distribute_feedback share.
type Stencil struct {
	Weights [3][3][3]float64
	I, J, K int

	// InDomain records whether the query point that produced this stencil
	// fell inside the integrable region. GasField implementations set it;
	// GasValues consults it to produce the out-of-domain sentinel.
	InDomain bool
}

// GasField is the gas-to-particle interpolation collaborator. It is
// explicitly out of this module's scope in general (the real weight
// functions and cell lookup belong to the MHD solver) — this interface
// pins only the contract the integrator needs. Package gasfield supplies
// one concrete, testable implementation.
type GasField interface {
	// WeightStencil locates the cell containing (x1, x2, x3) and fills a
	// 3x3x3 stencil of interpolation weights around it.
	WeightStencil(m *grid.Mesh, x1, x2, x3 float64) Stencil

	// GasValues returns the weighted gas sample at a stencil. ok is false
	// if the query point fell outside the integrable region.
	GasValues(m *grid.Mesh, st Stencil) (rho, u1, u2, u3, cs float64, ok bool)

	// VelocityShift applies the steady pressure-gradient-induced drift
	// correction to (u1, u2, u3) in place.
	VelocityShift(x1, x2, x3 float64, u1, u2, u3 *float64)

	// RefreshGasInfo refreshes any gas-derived caches the interpolation
	// relies on. Called once per step by the feedback predictor, before any
	// grain is visited.
	RefreshGasInfo(m *grid.Mesh)
}

// StoppingTime is the species-dependent drag-time collaborator.
type StoppingTime interface {
	StoppingTime(m *grid.Mesh, species int, rho, cs, dv float64) float64
}

// FeedbackSink is the momentum-deposition collaborator §4.6 drives.
type FeedbackSink interface {
	Clear(m *grid.Mesh)
	Distribute(m *grid.Mesh, st Stencil, fb [3]float64)
	DistributeShear(m *grid.Mesh, st Stencil, fb [3]float64)
}
