// Package diagnostics renders the run's basic sanity plots — velocity
// relaxation and epicyclic trajectories — with the same
// github.com/phil-mansfield/pyplot bindings the corpus uses for its
// halo-profile and splashback plots.
package diagnostics

import (
	plt "github.com/phil-mansfield/pyplot"
)

// PlotRelaxation draws v1(t) for a single grain against the analytic linear
// drag solution, saving to fname.
func PlotRelaxation(t, v1, analytic []float64, fname string) {
	plt.Figure()
	plt.Plot(t, v1, "ow", plt.LW(2))
	plt.Plot(t, analytic, "k")
	plt.Title("Grain velocity relaxation")
	plt.XLabel("t")
	plt.YLabel("v1")
	plt.SaveFig(fname)
}

// PlotEpicycle draws a grain's (x1, x2) trajectory in the shearing sheet,
// saving to fname.
func PlotEpicycle(x1, x2 []float64, fname string) {
	plt.Figure(plt.FigSize(6, 6))
	plt.Plot(x1, x2, "-b")
	plt.Title("Epicyclic trajectory")
	plt.XLabel("x1")
	plt.YLabel("x2")
	plt.SaveFig(fname)
}

// Finish flushes every figure queued by Plot* to disk. Callers invoke it
// once, after the run's last plot call.
func Finish() {
	plt.Execute()
}
