package ecs

// intersect returns the ids present in every set, driven by the smallest set.
// The result is a fresh slice, safe to hold while any set is mutated.
func intersect(sets []*SparseSet) []int {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if s == nil {
			return nil
		}
		if len(s.denseEntities) < len(sets[smallest].denseEntities) {
			smallest = i
		}
	}

	out := make([]int, 0, len(sets[smallest].denseEntities))
next:
	for _, id := range sets[smallest].denseEntities {
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				continue next
			}
		}
		out = append(out, id)
	}
	return out
}
