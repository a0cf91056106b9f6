package grain

import "fmt"

// Array is the contiguous, growable sequence of Grains owned by a Grid.
// NumParticle is the logical length; callers must never assume stable
// indices across a call to PurgeGhosts or RemoveAt.
type Array struct {
	grains  []Grain
	species []Species
}

// NewArray wraps an initial grain slice and its species table into an Array.
// The species table is mutated in place (its Num counters) by PurgeGhosts.
func NewArray(grains []Grain, species []Species) *Array {
	return &Array{grains: grains, species: species}
}

// NumParticle returns the logical length of the array.
func (a *Array) NumParticle() int { return len(a.grains) }

// Species returns the property table backing this array.
func (a *Array) Species() []Species { return a.species }

// At returns a pointer to the grain at index p. The pointer is invalidated
// by any call that removes a grain (PurgeGhosts, RemoveAt).
func (a *Array) At(p int) *Grain { return &a.grains[p] }

// Append adds a grain to the end of the array and bumps its species counter.
func (a *Array) Append(g Grain) {
	a.grains = append(a.grains, g)
	a.species[g.Species].Num++
}

// RemoveAt deletes the grain at index p by swapping the last grain into its
// slot and shrinking the array by one, decrementing the removed grain's
// species counter. It does not rescan; callers iterating with this method
// must re-test index p after the swap, since a new grain now occupies it.
func (a *Array) RemoveAt(p int) {
	n := len(a.grains)
	if n == 0 {
		panic(fmt.Sprintf("grain: RemoveAt(%d) called on empty array", p))
	}
	a.species[a.grains[p].Species].Num--
	a.grains[p] = a.grains[n-1]
	a.grains = a.grains[:n-1]
}

// PurgeGhosts compacts the array by removing every grain with Pos ==
// StatusGhost, using the swap-with-last-and-shrink pattern: scan from index
// 0 upward, and whenever the current slot holds a ghost, swap the last
// grain into it and rescan the same slot (the swapped-in grain might itself
// be a ghost). Running this twice in a row is a no-op.
func (a *Array) PurgeGhosts() {
	p := 0
	for p < len(a.grains) {
		if a.grains[p].Pos == StatusGhost {
			a.RemoveAt(p)
		} else {
			p++
		}
	}
}
