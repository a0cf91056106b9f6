package drag

import (
	"math"
	"testing"

	"github.com/kjartansson/shearbox/grain"
	"github.com/kjartansson/shearbox/grid"
)

type fakeGas struct {
	rho, u1, u2, u3, cs float64
	outOfDomain         bool
}

func (f *fakeGas) WeightStencil(m *grid.Mesh, x1, x2, x3 float64) Stencil { return Stencil{} }

func (f *fakeGas) GasValues(m *grid.Mesh, st Stencil) (rho, u1, u2, u3, cs float64, ok bool) {
	if f.outOfDomain {
		return 0, 0, 0, 0, 0, false
	}
	return f.rho, f.u1, f.u2, f.u3, f.cs, true
}

func (f *fakeGas) VelocityShift(x1, x2, x3 float64, u1, u2, u3 *float64) {}

func (f *fakeGas) RefreshGasInfo(m *grid.Mesh) {}

func TestDragAtRestGasGivesZeroForce(t *testing.T) {
	m := &grid.Mesh{}
	gas := &fakeGas{}
	stop := ConstantStopping{Species: []grain.Species{{DragParam: 1}}}

	r := At(m, gas, stop, 0, grain.Vector{}, grain.Vector{}, nil)
	if r.F != (grain.Vector{}) || r.InvTs != 1 {
		t.Fatalf("At() = %+v, want F=0, InvTs=1", r)
	}
}

func TestDragMagnitudeIsEuclidean(t *testing.T) {
	m := &grid.Mesh{}
	gas := &fakeGas{}
	stop := ConstantStopping{Species: []grain.Species{{DragParam: 2}}}

	v := grain.Vector{X1: 3, X2: 4, X3: 0}
	r := At(m, gas, stop, 0, grain.Vector{}, v, nil)

	wantMag := 5.0 // 3-4-5 triangle
	gotMag := math.Sqrt(r.F.X1*r.F.X1 + r.F.X2*r.F.X2 + r.F.X3*r.F.X3)
	if math.Abs(gotMag-wantMag/2) > 1e-12 {
		t.Fatalf("|F| = %g, want %g", gotMag, wantMag/2)
	}
	if r.F.X1 != -1.5 || r.F.X2 != -2 {
		t.Fatalf("F = %+v, want {-1.5 -2 0}", r.F)
	}
}

func TestDragOutOfDomainIsFreeMotion(t *testing.T) {
	m := &grid.Mesh{}
	gas := &fakeGas{outOfDomain: true}
	stop := ConstantStopping{Species: []grain.Species{{DragParam: 1}}}

	r := At(m, gas, stop, 0, grain.Vector{}, grain.Vector{X1: 10}, nil)
	if r.F != (grain.Vector{}) || r.InvTs != 0 {
		t.Fatalf("At() = %+v, want F=0, InvTs=0 for out-of-domain grain", r)
	}
}
