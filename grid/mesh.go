// Package grid provides the integrator's read-only view of the mesh: cell
// counts and spacings, the live-particle region, the global clock, and the
// per-cell feedback accumulator.
package grid

// Mesh is the integrator's view of the Grid. It is read-only from the
// integrator's perspective — the gas solver advances it before the
// integrator runs, and the integrator never writes back into it except
// through the FeedbackField.
type Mesh struct {
	// N1, N2, N3 are per-axis cell counts. Ni == 1 signals "axis
	// collapsed; do not advance along it" — see Active.
	N1, N2, N3 int
	// Dx1, Dx2, Dx3 are per-axis cell spacings.
	Dx1, Dx2, Dx3 float64

	// Time is the global simulation time and Dt the step about to be
	// taken.
	Time, Dt float64

	// ProcID is the owning processor's id, used only for diagnostics.
	ProcID int

	// Live-region bounds per axis: a grain update that carries a grain's
	// coordinate outside [Lo, Hi) on an active, non-exempt axis gets
	// tagged StatusCrossedOut.
	X1Lo, X1Hi float64
	X2Lo, X2Hi float64
	X3Lo, X3Hi float64

	// Omega is the shearing sheet's orbital angular frequency. It is a
	// process-wide constant in the source this is drawn from; here it
	// travels with the Mesh so tests can vary it freely.
	Omega float64

	ShearingBox     bool
	Fargo           bool
	VerticalGravity bool
	Feedback        bool
}

// Active reports, once per call, which axes the integrator should advance.
// An axis with Ni == 1 is collapsed: position and velocity along it are
// left untouched by every integrator (see package integrator). This is
// computed here, in one place, rather than re-testing Ni > 1 inline at every
// position and velocity update site.
func (m *Mesh) Active() (a1, a2, a3 bool) {
	return m.N1 > 1, m.N2 > 1, m.N3 > 1
}

// Dim3D reports whether the mesh runs the 3D shearing-sheet force law
// (axes X, Y, Z) rather than the 2D one (axes X, Z, Y, with the third
// spatial index azimuthal). It mirrors the original source's `Nx3 > 1`
// branch condition. It coincides with Active's third flag, since both test
// N3 > 1.
func (m *Mesh) Dim3D() bool {
	return m.N3 > 1
}

// Cell1 returns 1/dx per axis, with 0 standing in for a collapsed axis — the
// same "cell1" shorthand-and-dimension-indicator the original integrator
// computes once per step.
func (m *Mesh) Cell1() (c1, c2, c3 float64) {
	a1, a2, a3 := m.Active()
	if a1 {
		c1 = 1.0 / m.Dx1
	}
	if a2 {
		c2 = 1.0 / m.Dx2
	}
	if a3 {
		c3 = 1.0 / m.Dx3
	}
	return c1, c2, c3
}
