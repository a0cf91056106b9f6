// Package config loads the INI-style run configuration gcfg-parses into the
// Mesh and physics flags the integrator needs, following the same
// Wrapper-struct-plus-CheckInit convention the rest of the corpus uses for
// its render and bounds configs.
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/kjartansson/shearbox/grid"
)

// PhysicsConfig is the gcfg-readable [Physics] section: mesh geometry, the
// timestep, and the build-flag-equivalent booleans that select which force
// terms and which integrator variant a run exercises.
type PhysicsConfig struct {
	// Required
	N1, N2, N3    int
	Dx1, Dx2, Dx3 float64
	Dt            float64

	// Optional
	Omega           float64
	ShearingBox     bool
	Fargo           bool
	VerticalGravity bool
	Feedback        bool
	Integrator      string // "explicit" | "semi-implicit" | "fully-implicit"

	X1Lo, X1Hi float64
	X2Lo, X2Hi float64
	X3Lo, X3Hi float64
}

// Wrapper is the top-level gcfg target: a run file has exactly one
// [Physics] section.
type Wrapper struct {
	Physics PhysicsConfig
}

// CheckInit validates the parsed config and fills in the defaults a bare
// INI file is allowed to omit. It mirrors the corpus's ValidX/CheckInit
// convention: required fields are checked explicitly, optional ones get a
// default when left at their zero value.
func (p *PhysicsConfig) CheckInit() error {
	if p.N1 <= 0 || p.N2 <= 0 || p.N3 <= 0 {
		return fmt.Errorf("config: N1, N2, N3 must all be positive, got %d, %d, %d", p.N1, p.N2, p.N3)
	}
	if p.Dx1 <= 0 || p.Dx2 <= 0 || p.Dx3 <= 0 {
		return fmt.Errorf("config: Dx1, Dx2, Dx3 must all be positive")
	}
	if p.Dt <= 0 {
		return fmt.Errorf("config: Dt must be positive, got %g", p.Dt)
	}

	if p.Integrator == "" {
		p.Integrator = "semi-implicit"
	}
	switch p.Integrator {
	case "explicit", "semi-implicit", "fully-implicit":
	default:
		return fmt.Errorf("config: Integrator must be one of explicit, semi-implicit, fully-implicit, got %q", p.Integrator)
	}

	if p.Fargo && !p.ShearingBox {
		return fmt.Errorf("config: Fargo requires ShearingBox")
	}
	if p.ShearingBox && p.Omega == 0 {
		return fmt.Errorf("config: ShearingBox requires a nonzero Omega")
	}

	if p.X1Hi == 0 && p.X1Lo == 0 {
		p.X1Hi = float64(p.N1) * p.Dx1
	}
	if p.X2Hi == 0 && p.X2Lo == 0 {
		p.X2Hi = float64(p.N2) * p.Dx2
	}
	if p.X3Hi == 0 && p.X3Lo == 0 {
		p.X3Hi = float64(p.N3) * p.Dx3
	}

	return nil
}

// Mesh builds the grid.Mesh this config describes, at simulation time 0.
func (p *PhysicsConfig) Mesh() *grid.Mesh {
	return &grid.Mesh{
		N1: p.N1, N2: p.N2, N3: p.N3,
		Dx1: p.Dx1, Dx2: p.Dx2, Dx3: p.Dx3,
		Dt:              p.Dt,
		Omega:           p.Omega,
		ShearingBox:     p.ShearingBox,
		Fargo:           p.Fargo,
		VerticalGravity: p.VerticalGravity,
		Feedback:        p.Feedback,
		X1Lo:            p.X1Lo, X1Hi: p.X1Hi,
		X2Lo: p.X2Lo, X2Hi: p.X2Hi,
		X3Lo: p.X3Lo, X3Hi: p.X3Hi,
	}
}

// Load reads and validates a run configuration file.
func Load(fname string) (*PhysicsConfig, error) {
	var w Wrapper
	if err := gcfg.ReadFileInto(&w, fname); err != nil {
		return nil, err
	}
	if err := w.Physics.CheckInit(); err != nil {
		return nil, err
	}
	return &w.Physics, nil
}
