package tour

import "github.com/hlin91/cppauvsi-searchpath/geo"

// bruteForceLimit is the largest node count Plan will brute-force by
// permutation. 10! is about 3.6 million orderings, already the point of
// diminishing returns for a heuristic that only approximates flight cost
// with center-to-center distance in the first place; beyond this, Plan
// falls back to a nearest-neighbor greedy tour. The original always
// brute-forces, noting it's only fast enough for "5 or less" nodes; this
// is a deliberate widening of that assumption, not a literal port.
const bruteForceLimit = 10

// order computes the minimum-length visiting order over g's nodes.
func (g *Graph) order() []int {
	n := g.Size()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if n <= bruteForceLimit {
		return g.bruteForceOrder(indices)
	}
	return g.greedyOrder(indices)
}

// bruteForceOrder tries every permutation of indices and returns the one
// with minimum total length, mirroring the original's next_permutation
// loop.
func (g *Graph) bruteForceOrder(indices []int) []int {
	best := append([]int(nil), indices...)
	bestLength := -1.0
	perm := append([]int(nil), indices...)
	permute(perm, 0, func(candidate []int) {
		l := g.length(candidate)
		if bestLength < 0 || l < bestLength {
			bestLength = l
			best = append(best[:0], candidate...)
		}
	})
	return best
}

// permute invokes visit once for every permutation of perm[k:], built in
// place by swapping each candidate into position k, recursing, and
// swapping it back.
func permute(perm []int, k int, visit func([]int)) {
	if k == len(perm) {
		visit(perm)
		return
	}
	for i := k; i < len(perm); i++ {
		perm[k], perm[i] = perm[i], perm[k]
		permute(perm, k+1, visit)
		perm[k], perm[i] = perm[i], perm[k]
	}
}

// greedyOrder builds a nearest-neighbor tour starting from indices[0]: at
// each step, append the unvisited node with least weight from the current
// node.
func (g *Graph) greedyOrder(indices []int) []int {
	n := len(indices)
	visited := make([]bool, n)
	order := make([]int, 0, n)
	cur := indices[0]
	order = append(order, cur)
	visited[cur] = true
	for len(order) < n {
		next := -1
		bestWeight := -1.0
		for _, j := range indices {
			if visited[j] {
				continue
			}
			if bestWeight < 0 || g.weight[cur][j] < bestWeight {
				bestWeight = g.weight[cur][j]
				next = j
			}
		}
		order = append(order, next)
		visited[next] = true
		cur = next
	}
	return order
}

// assignStates chooses a start state for every node along order, linking
// consecutive subregions by the shortest jump: the first node's state is
// picked by comparing its four exit candidates against the second node's
// center, then each subsequent node's state is picked by comparing its
// four entry candidates against the previous node's chosen exit point.
func (g *Graph) assignStates(order []int) {
	if len(order) == 0 {
		return
	}
	first := &g.Nodes[order[0]]
	if len(order) == 1 {
		first.StartState = StartV1
		return
	}
	nextCenter := g.Nodes[order[1]].Region.Center()
	first.StartState = bestExitState(*first, nextCenter)

	for i := 0; i+1 < len(order); i++ {
		joint := g.Nodes[order[i]].exit()
		next := &g.Nodes[order[i+1]]
		next.StartState = bestEntryState(*next, joint)
	}
}

// bestExitState returns whichever of n's four start states has the exit
// point closest to target.
func bestExitState(n Node, target geo.Point) State {
	states := []State{StartV1, StartV2, EndV1, EndV2}
	best := states[0]
	n.StartState = best
	bestDist := geo.Distance(n.exit(), target)
	for _, s := range states[1:] {
		n.StartState = s
		if d := geo.Distance(n.exit(), target); d < bestDist {
			bestDist = d
			best = s
		}
	}
	return best
}

// bestEntryState returns whichever of n's four start states has the entry
// point closest to target.
func bestEntryState(n Node, target geo.Point) State {
	states := []State{StartV1, StartV2, EndV1, EndV2}
	best := states[0]
	n.StartState = best
	bestDist := geo.Distance(n.entry(), target)
	for _, s := range states[1:] {
		n.StartState = s
		if d := geo.Distance(n.entry(), target); d < bestDist {
			bestDist = d
			best = s
		}
	}
	return best
}

// Plan computes a visiting order over nodes and assigns each one a start
// state, minimizing the total inter-subregion jump distance along that
// order. It returns the built Graph (with StartState filled in on its
// Nodes) and the chosen visiting order as indices into it.
func Plan(nodes []Node) (*Graph, []int) {
	g := NewGraph(nodes)
	if g.Size() == 0 {
		return g, nil
	}
	order := g.order()
	g.assignStates(order)
	return g, order
}
