package archive

import "github.com/katalvlaran/pareto/front"

// enforceCapacity prunes the Archive down to its configured capacity by
// repeatedly discarding, from the deepest layer, the point with the largest
// crowding distance in that layer — the point sitting in the most isolated
// region, whose removal leaves the remaining layer members more tightly
// and evenly spread. An emptied deepest layer is dropped so Fronts() never
// reports trailing empty layers.
func (a *Archive) enforceCapacity() {
	for a.capacity > 0 && a.Len() > a.capacity && len(a.layers) > 0 {
		deepest := a.layers[len(a.layers)-1]
		entries := deepest.Iterate()
		if len(entries) == 0 {
			a.layers = a.layers[:len(a.layers)-1]
			continue
		}

		dist := front.CrowdingDistances(entries, a.dir)
		worst := 0
		for i := 1; i < len(dist); i++ {
			if dist[i] > dist[worst] {
				worst = i
			}
		}
		deepest.Erase(entries[worst].Point)

		if deepest.Empty() {
			a.layers = a.layers[:len(a.layers)-1]
		}
	}
}
