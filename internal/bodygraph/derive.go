package bodygraph

import "sort"

// ActiveChannels returns the channels whose two gates both appear in the
// given gate set, sorted by key. Duplicate gates in the input are harmless;
// activation depends only on gate membership.
func ActiveChannels(gates []int) []Channel {
	set := make(map[int]bool, len(gates))
	for _, g := range gates {
		set[g] = true
	}

	var active []Channel
	for _, ch := range channelTable {
		if set[ch.GateA] && set[ch.GateB] {
			active = append(active, ch)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Key() < active[j].Key() })
	return active
}

// DefinedCenters returns the set of centers that appear as an endpoint of at
// least one active channel.
func DefinedCenters(active []Channel) map[Center]bool {
	defined := make(map[Center]bool)
	for _, ch := range active {
		defined[ch.CenterA] = true
		defined[ch.CenterB] = true
	}
	return defined
}

// MotorToThroat reports whether any motor center is reachable from the
// Throat through the network of active channels between defined centers.
// A direct motor-Throat channel is the degenerate single-hop case.
func MotorToThroat(defined map[Center]bool, active []Channel) bool {
	if !defined[Throat] {
		return false
	}

	visited := make(map[Center]bool)
	stack := []Center{Throat}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true

		if cur != Throat && cur.IsMotor() {
			return true
		}

		for _, ch := range active {
			if ch.CenterA == cur && defined[ch.CenterB] {
				stack = append(stack, ch.CenterB)
			}
			if ch.CenterB == cur && defined[ch.CenterA] {
				stack = append(stack, ch.CenterA)
			}
		}
	}
	return false
}

// Connected reports whether centers x and y are joined by at least one
// active channel.
func Connected(active []Channel, x, y Center) bool {
	for _, ch := range active {
		if ch.Joins(x, y) {
			return true
		}
	}
	return false
}
