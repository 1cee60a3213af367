package layout

import "sort"

// GroupOverlapping partitions timed items of one column into stacking
// groups. Items are scanned in start order (stable, so ties keep their
// original order); each item joins the first existing group containing any
// item it overlaps, otherwise it starts a new group.
//
// This is deliberately greedy, not a transitive closure: an item that
// overlaps members of two different groups joins only the earlier group
// and never merges the two. Side-by-side widths are derived from final
// group sizes, so the greedy behavior is part of the layout contract.
func GroupOverlapping(items []Item) [][]Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Range.Start < sorted[j].Range.Start
	})

	var groups [][]Item
	for _, item := range sorted {
		joined := false
		for gi, group := range groups {
			for _, member := range group {
				if item.Range.Overlaps(member.Range) {
					groups[gi] = append(groups[gi], item)
					joined = true
					break
				}
			}
			if joined {
				break
			}
		}
		if !joined {
			groups = append(groups, []Item{item})
		}
	}
	return groups
}
