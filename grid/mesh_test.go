package grid

import "testing"

func TestActiveCollapsedAxes(t *testing.T) {
	m := &Mesh{N1: 8, N2: 1, N3: 1}
	a1, a2, a3 := m.Active()
	if !a1 || a2 || a3 {
		t.Fatalf("Active() = %v,%v,%v; want true,false,false", a1, a2, a3)
	}
	if m.Dim3D() {
		t.Fatalf("Dim3D() = true for N3 = 1")
	}
}

func TestCell1CollapsedAxisIsZero(t *testing.T) {
	m := &Mesh{N1: 8, Dx1: 0.5, N2: 1, Dx2: 1, N3: 1, Dx3: 1}
	c1, c2, c3 := m.Cell1()
	if c1 != 2 {
		t.Fatalf("c1 = %g, want 2", c1)
	}
	if c2 != 0 || c3 != 0 {
		t.Fatalf("c2,c3 = %g,%g, want 0,0 on collapsed axes", c2, c3)
	}
}

func TestFeedbackFieldConservesSum(t *testing.T) {
	m := &Mesh{N1: 4, N2: 4, N3: 1}
	fb := NewFeedbackField(m)
	fb.Add(1, 1, 0, [3]float64{1, 2, 3})
	fb.Add(2, 2, 0, [3]float64{-1, 1, 0})

	sum := fb.Sum()
	want := [3]float64{0, 3, 3}
	if sum != want {
		t.Fatalf("Sum() = %v, want %v", sum, want)
	}

	fb.Clear()
	if fb.Sum() != ([3]float64{}) {
		t.Fatalf("Sum() after Clear() = %v, want zero", fb.Sum())
	}
}
