// Command shearstep runs a fixed number of integrator steps over a grain
// array against a uniform reference gas field and reports the result,
// following the corpus's flag-parsed, log.Fatal-on-setup-error main()
// convention.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/kjartansson/shearbox/config"
	"github.com/kjartansson/shearbox/diagnostics"
	"github.com/kjartansson/shearbox/drag"
	"github.com/kjartansson/shearbox/gasfield"
	"github.com/kjartansson/shearbox/grain"
	"github.com/kjartansson/shearbox/grid"
	"github.com/kjartansson/shearbox/integrator"
	"github.com/kjartansson/shearbox/sptable"
)

func main() {
	configFile := flag.String("config", "", "path to the run's [Physics] config file")
	speciesFile := flag.String("species", "", "path to the species property table")
	steps := flag.Int("steps", 1, "number of integrator steps to run")
	plotFile := flag.String("plot", "", "if set, write a relaxation plot here")
	flag.Parse()

	if *configFile == "" || *speciesFile == "" {
		log.Fatalf("Usage: %s -config run.cfg -species species.txt [-steps N] [-plot out.png]", os.Args[0])
	}

	logger := log.New(os.Stderr, "shearstep: ", log.LstdFlags)

	phys, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	species, err := sptable.Read(*speciesFile)
	if err != nil {
		log.Fatalf("loading species table: %v", err)
	}

	m := phys.Mesh()
	gf := gasfield.NewUniform(m)
	gf.Fill(1, 0, 0, 0, 1)

	arr := grain.NewArray([]grain.Grain{
		{X1: float64(m.N1) * m.Dx1 / 2, Pos: grain.StatusLive},
	}, species)

	deps := integrator.Deps{
		Gas:    gf,
		Stop:   drag.ConstantStopping{Species: species},
		FB:     gf,
		Logger: logger,
	}

	step := stepFunc(phys.Integrator)

	v0 := arr.At(0).V1
	var ts, v1s, analytic []float64
	for i := 0; i < *steps; i++ {
		integrator.Predictor(m, arr, deps)
		step(m, arr, deps)
		m.Time += m.Dt

		g := arr.At(0)
		ts = append(ts, m.Time)
		v1s = append(v1s, g.V1)
		analytic = append(analytic, v0*math.Exp(-m.Time/species[g.Species].DragParam))
		logger.Printf("step %d: t=%.4g x1=%.6g v1=%.6g pos=%d", i, m.Time, g.X1, g.V1, g.Pos)
	}

	if *plotFile != "" {
		diagnostics.PlotRelaxation(ts, v1s, analytic, *plotFile)
		diagnostics.Finish()
	}
}

func stepFunc(name string) func(*grid.Mesh, *grain.Array, integrator.Deps) {
	switch name {
	case "explicit":
		return integrator.Explicit
	case "fully-implicit":
		return integrator.FullyImplicit
	default:
		return integrator.SemiImplicit
	}
}
