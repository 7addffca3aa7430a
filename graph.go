package cellgraph

// cycleCheck reports whether linking self -> each cell in referenced would
// close a cycle. self is reachable from referenced iff referenced is
// reachable from self following incoming edges (from) — so a worklist
// walk over self's from-closure that ever lands on a referenced cell
// proves the new edge would close a loop. Self-reference (self itself in
// referenced) is always a cycle.
//
// Mirrors the teacher's GetAllDependents worklist/visited-set shape
// (graph.go) generalized from a centralized map-keyed graph to Cell-owned
// adjacency sets.
func cycleCheck(self *Cell, referenced map[*Cell]struct{}) bool {
	if _, ok := referenced[self]; ok {
		return true
	}

	visited := map[*Cell]struct{}{self: {}}
	worklist := []*Cell{self}

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for referrer := range current.from {
			if _, ok := referenced[referrer]; ok {
				return true
			}
			if _, seen := visited[referrer]; seen {
				continue
			}
			visited[referrer] = struct{}{}
			worklist = append(worklist, referrer)
		}
	}
	return false
}

// invalidateCascade clears start's cache (if it holds one) and walks the
// transitive from-closure clearing every referrer's cache, using a
// worklist with a visited-set to avoid revisiting shared (diamond)
// dependents. Returns the number of cells whose cache was actually
// cleared, for logging.
func invalidateCascade(start *Cell) int {
	visited := map[*Cell]struct{}{start: {}}
	worklist := []*Cell{start}
	cleared := 0

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if current.cacheValid {
			current.cacheValid = false
			cleared++
		}

		for referrer := range current.from {
			if _, seen := visited[referrer]; seen {
				continue
			}
			visited[referrer] = struct{}{}
			worklist = append(worklist, referrer)
		}
	}
	return cleared
}
