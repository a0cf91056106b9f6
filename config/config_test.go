package config

import "testing"

func TestCheckInitFillsDefaults(t *testing.T) {
	p := &PhysicsConfig{N1: 8, N2: 1, N3: 1, Dx1: 1, Dx2: 1, Dx3: 1, Dt: 0.01}
	if err := p.CheckInit(); err != nil {
		t.Fatalf("CheckInit() = %v, want nil", err)
	}
	if p.Integrator != "semi-implicit" {
		t.Fatalf("Integrator = %q, want the default semi-implicit", p.Integrator)
	}
	if p.X1Hi != 8 {
		t.Fatalf("X1Hi = %g, want the derived default 8", p.X1Hi)
	}
}

func TestCheckInitRejectsFargoWithoutShearingBox(t *testing.T) {
	p := &PhysicsConfig{N1: 8, N2: 1, N3: 1, Dx1: 1, Dx2: 1, Dx3: 1, Dt: 0.01, Fargo: true}
	if err := p.CheckInit(); err == nil {
		t.Fatal("CheckInit() = nil, want an error for Fargo without ShearingBox")
	}
}

func TestCheckInitRejectsUnknownIntegrator(t *testing.T) {
	p := &PhysicsConfig{N1: 8, N2: 1, N3: 1, Dx1: 1, Dx2: 1, Dx3: 1, Dt: 0.01, Integrator: "leapfrog"}
	if err := p.CheckInit(); err == nil {
		t.Fatal("CheckInit() = nil, want an error for an unrecognized integrator name")
	}
}

func TestMeshCarriesPhysicsFlags(t *testing.T) {
	p := &PhysicsConfig{
		N1: 8, N2: 8, N3: 8, Dx1: 1, Dx2: 1, Dx3: 1, Dt: 0.01,
		Omega: 1, ShearingBox: true,
	}
	if err := p.CheckInit(); err != nil {
		t.Fatalf("CheckInit() = %v, want nil", err)
	}
	m := p.Mesh()
	if !m.ShearingBox || m.Omega != 1 {
		t.Fatalf("Mesh() = %+v, want ShearingBox=true, Omega=1", m)
	}
}
