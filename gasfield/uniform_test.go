package gasfield

import (
	"math"
	"testing"

	"github.com/kjartansson/shearbox/grid"
)

func TestUniformGasFieldReturnsFillValue(t *testing.T) {
	m := &grid.Mesh{N1: 8, N2: 1, N3: 1, Dx1: 1, Dx2: 1, Dx3: 1}
	gf := NewUniform(m)
	gf.Fill(2, 1, 0, 0, 0.5)

	st := gf.WeightStencil(m, 4.5, 0, 0)
	rho, u1, u2, u3, cs, ok := gf.GasValues(m, st)
	if !ok {
		t.Fatal("GasValues() reported out of domain for an interior point")
	}
	if rho != 2 || u1 != 1 || u2 != 0 || u3 != 0 || cs != 0.5 {
		t.Fatalf("GasValues() = %g,%g,%g,%g,%g, want the fill values", rho, u1, u2, u3, cs)
	}
}

func TestUniformGasFieldOutOfDomain(t *testing.T) {
	m := &grid.Mesh{N1: 8, N2: 1, N3: 1, Dx1: 1, Dx2: 1, Dx3: 1}
	gf := NewUniform(m)
	gf.Fill(1, 0, 0, 0, 1)

	st := gf.WeightStencil(m, -1, 0, 0)
	_, _, _, _, _, ok := gf.GasValues(m, st)
	if ok {
		t.Fatal("GasValues() should report out of domain for x1 < 0")
	}
}

func TestUniformStencilWeightsSumToOne(t *testing.T) {
	m := &grid.Mesh{N1: 16, N2: 16, N3: 16, Dx1: 1, Dx2: 1, Dx3: 1}
	gf := NewUniform(m)

	st := gf.WeightStencil(m, 5.3, 8.1, 2.9)
	sum := 0.0
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				sum += st.Weights[a][b][c]
			}
		}
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("stencil weights sum to %g, want 1", sum)
	}
}

func TestUniformStencilWeightsSumToOneOnTwoCellAxis(t *testing.T) {
	m := &grid.Mesh{N1: 8, N2: 2, N3: 1, Dx1: 1, Dx2: 1, Dx3: 1}
	gf := NewUniform(m)

	st := gf.WeightStencil(m, 4.3, 0.9, 0)
	sum := 0.0
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				sum += st.Weights[a][b][c]
			}
		}
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("stencil weights sum to %g, want 1 (no weight dropped on a 2-cell axis)", sum)
	}
}

func TestFeedbackDistributeConserves(t *testing.T) {
	m := &grid.Mesh{N1: 8, N2: 8, N3: 1, Dx1: 1, Dx2: 1, Dx3: 1}
	gf := NewUniform(m)
	gf.Clear(m)

	st := gf.WeightStencil(m, 4.2, 3.7, 0)
	gf.Distribute(m, st, [3]float64{1, 2, 3})

	sum := gf.Feedback().Sum()
	if math.Abs(sum[0]-1) > 1e-12 || math.Abs(sum[1]-2) > 1e-12 || math.Abs(sum[2]-3) > 1e-12 {
		t.Fatalf("Feedback().Sum() = %v, want {1 2 3}", sum)
	}
}
