package dag

// AssignRanks assigns each node to a discrete rank (layer) using the
// longest-path rule over a topological traversal (Kahn's algorithm):
//   - Source nodes (in-degree 0) sit at rank 0
//   - Every node sits one below its deepest parent
//
// AssignRanks assumes the graph is acyclic. Nodes trapped in a cycle never
// reach zero in-degree and keep their default rank 0 - run [BreakCycles]
// first. Runs in O(V + E).
func AssignRanks(g *Graph) map[string]int {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	ranks := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		ranks[n.ID] = 0
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			if rank := ranks[curr] + 1; rank > ranks[child] {
				ranks[child] = rank
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return ranks
}

// BreakCycles removes back edges until the graph is acyclic, returning the
// number of edges removed. Back edges are found with a depth-first search
// colored white/gray/black, starting from source nodes and then sweeping
// any remaining unvisited nodes, both in insertion order so the choice of
// removed edges is deterministic.
func BreakCycles(g *Graph) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var backEdges [][2]string

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, child := range g.Children(node) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				backEdges = append(backEdges, [2]string{node, child})
			}
		}
		color[node] = black
	}

	for _, id := range g.Sources() {
		if color[id] == white {
			dfs(id)
		}
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, e := range backEdges {
		g.RemoveEdges(e[0], e[1])
	}
	return len(backEdges)
}
