package force

import (
	"testing"

	"github.com/kjartansson/shearbox/grain"
	"github.com/kjartansson/shearbox/grid"
)

func TestNoShearingBoxIsZero(t *testing.T) {
	m := &grid.Mesh{N1: 8, N2: 8, N3: 8, Omega: 1}
	f := On(m, grain.Vector{X1: 1, X2: 1, X3: 1}, grain.Vector{X1: 1, X2: 1, X3: 1})
	if f != (grain.Vector{}) {
		t.Fatalf("On() = %+v, want zero without SHEARING_BOX", f)
	}
}

func Test3DNonFargo(t *testing.T) {
	m := &grid.Mesh{N1: 8, N2: 8, N3: 8, ShearingBox: true, Omega: 2}
	x := grain.Vector{X1: 0.5}
	v := grain.Vector{X1: 1, X2: 2}
	f := On(m, x, v)

	wantF1 := 3*4*0.5 + 2*2*2.0 // 3*Omega^2*x1 + 2*Omega*v2
	wantF2 := -2 * 2.0 * 1.0    // -2*Omega*v1
	if f.X1 != wantF1 || f.X2 != wantF2 || f.X3 != 0 {
		t.Fatalf("On() = %+v, want {%g %g 0}", f, wantF1, wantF2)
	}
}

func Test3DFargoHalvesCoriolis(t *testing.T) {
	m := &grid.Mesh{N1: 8, N2: 8, N3: 8, ShearingBox: true, Fargo: true, Omega: 2}
	v := grain.Vector{X1: 1, X2: 2}
	f := On(m, grain.Vector{X1: 5}, v) // x1 term must drop out under FARGO

	wantF1 := 2 * 2.0 * 2.0  // 2*Omega*v2, no tidal term
	wantF2 := -0.5 * 2.0 * 1 // -0.5*Omega*v1
	if f.X1 != wantF1 || f.X2 != wantF2 {
		t.Fatalf("On() = %+v, want {%g %g _}", f, wantF1, wantF2)
	}
}

func Test3DVerticalGravity(t *testing.T) {
	m := &grid.Mesh{N1: 8, N2: 8, N3: 8, ShearingBox: true, VerticalGravity: true, Omega: 3}
	f := On(m, grain.Vector{X3: 2}, grain.Vector{})
	want := -9.0 * 2.0
	if f.X3 != want {
		t.Fatalf("F3 = %g, want %g", f.X3, want)
	}
}

func Test2DAxisConvention(t *testing.T) {
	// 2D mode: N3 == 1, azimuth carried in x3.
	m := &grid.Mesh{N1: 8, N2: 8, N3: 1, ShearingBox: true, VerticalGravity: true, Omega: 2}
	x := grain.Vector{X1: 0.5, X2: 1.5}
	v := grain.Vector{X1: 1, X3: 2}
	f := On(m, x, v)

	wantF1 := 3*4*0.5 + 2*2.0*2.0 // 3*Omega^2*x1 + 2*Omega*v3
	wantF3 := -2 * 2.0 * 1.0      // -2*Omega*v1
	wantF2 := -4.0 * 1.5          // -Omega^2*x2 (vertical gravity on x2 in 2D)
	if f.X1 != wantF1 || f.X3 != wantF3 || f.X2 != wantF2 {
		t.Fatalf("On() = %+v, want {%g %g %g}", f, wantF1, wantF2, wantF3)
	}
}
