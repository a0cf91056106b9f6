package grain

// Species holds the material constants shared by every grain of one kind:
// at minimum a mass and whatever drag parameters the stopping-time
// collaborator needs to turn (rho, cs, |dv|) into a stopping time. Num
// tracks how many live grains currently reference this species, the same
// counter the ghost purge decrements.
type Species struct {
	// M is the grain mass.
	M float64

	// DragParam is an opaque, species-specific drag parameter (e.g. a
	// grain size or an intrinsic stopping time) interpreted only by the
	// stopping-time collaborator in package drag.
	DragParam float64

	// Num is the live grain count for this species.
	Num int
}
