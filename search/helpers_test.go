package search_test

// edge is one weighted outgoing arc of a test graph.
type edge struct {
	to   string
	cost float64
}

// graphProblem is a small explicit graph whose actions are target vertex names.
// Actions are returned in adjacency order.
type graphProblem struct {
	start, goal string
	adj         map[string][]edge
}

func (g *graphProblem) InitialState() string     { return g.start }
func (g *graphProblem) IsGoal(s string) bool      { return s == g.goal }
func (g *graphProblem) Result(_, a string) string { return a }

func (g *graphProblem) Actions(s string) []string {
	out := make([]string, 0, len(g.adj[s]))
	for _, e := range g.adj[s] {
		out = append(out, e.to)
	}
	return out
}

func (g *graphProblem) Cost(s, a, _ string) float64 {
	for _, e := range g.adj[s] {
		if e.to == a {
			return e.cost
		}
	}
	return 0
}

// informedProblem adds a table heuristic to graphProblem.
type informedProblem struct {
	*graphProblem
	h map[string]float64
}

func (p *informedProblem) Heuristic(s string) float64 { return p.h[s] }

// diamond builds:
//
//	A -10-> B -10-> D
//	A -1->  C -1->  E -1-> D
//
// BFS reaches D through B (2 edges, cost 20); cost-ordered search through C, E (cost 3).
func diamond(goal string) *graphProblem {
	return &graphProblem{
		start: "A",
		goal:  goal,
		adj: map[string][]edge{
			"A": {{"B", 10}, {"C", 1}},
			"B": {{"D", 10}},
			"C": {{"E", 1}},
			"E": {{"D", 1}},
		},
	}
}

// informedDiamond is diamond("D") with an admissible heuristic.
func informedDiamond() *informedProblem {
	return &informedProblem{
		graphProblem: diamond("D"),
		h:            map[string]float64{"A": 3, "B": 5, "C": 2, "E": 1, "D": 0},
	}
}
