package hexwar

import (
	"container/heap"
	"math"
)

// Path is a minimum-cost route between two tiles, inclusive of both
// endpoints.
type Path struct {
	Tiles []Hex
	Cost  float64
}

// ReachableTile is one entry of a movement-budget flood fill: a tile the
// unit can legally stop on this turn and the cheapest cumulative cost
// found to reach it.
type ReachableTile struct {
	Pos  Hex
	Cost float64
}

// pathNode is an open-set entry for A* / Dijkstra. seq preserves
// discovery order so that equal-priority nodes pop first-discovered
// first.
type pathNode struct {
	pos  Hex
	cost float64 // g: cumulative cost from start
	f    float64 // g + heuristic (equals g for Dijkstra)
	seq  int
}

type nodeHeap []pathNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(pathNode)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// FindPath runs A* from start to goal over the given terrain profile and
// blocked set. The heuristic is hex distance scaled by the profile's
// minimum terrain cost, which stays admissible even when road costs drop
// below 1. Returns nil when start or goal is impassable or no route
// exists; absence of a path is a normal outcome, not an error.
func FindPath(tm TileMap, start, goal Hex, costs TerrainCosts, blocked map[Hex]bool) *Path {
	if !enterable(tm, start, costs, nil) || !enterable(tm, goal, costs, blocked) {
		return nil
	}
	if start == goal {
		return &Path{Tiles: []Hex{start}, Cost: 0}
	}

	scale := costs.MinCost()
	if math.IsInf(scale, 1) {
		return nil
	}
	h := func(p Hex) float64 {
		return float64(HexDistance(p, goal)) * scale
	}

	open := &nodeHeap{{pos: start, cost: 0, f: h(start)}}
	heap.Init(open)
	cameFrom := make(map[Hex]Hex)
	costSoFar := map[Hex]float64{start: 0}
	seq := 0

	for open.Len() > 0 {
		cur := heap.Pop(open).(pathNode)
		if cur.pos == goal {
			return &Path{Tiles: reconstruct(cameFrom, start, goal), Cost: costSoFar[goal]}
		}
		if cur.cost > costSoFar[cur.pos] {
			continue // stale entry
		}
		for _, nb := range cur.pos.Neighbors() {
			if !enterable(tm, nb, costs, blocked) {
				continue
			}
			t, _ := tm.TileAt(nb)
			next := cur.cost + costs.Cost(t)
			if prev, seen := costSoFar[nb]; seen && next >= prev {
				continue
			}
			costSoFar[nb] = next
			cameFrom[nb] = cur.pos
			seq++
			heap.Push(open, pathNode{pos: nb, cost: next, f: next + h(nb), seq: seq})
		}
	}
	return nil
}

// ReachablePositions flood-fills outward from start, Dijkstra-style,
// bounded by the unit's per-turn speed budget. Blocked tiles can neither
// be traversed nor stopped on. Occupied tiles (other units' positions)
// can be traversed but are excluded from the result since a unit cannot
// end its move on one. A tile reachable by several routes keeps the
// lowest cumulative cost. The start tile is always included at cost 0.
func ReachablePositions(tm TileMap, start Hex, speed float64, costs TerrainCosts, blocked, occupied map[Hex]bool) map[Hex]ReachableTile {
	result := map[Hex]ReachableTile{start: {Pos: start, Cost: 0}}
	if _, ok := tm.TileAt(start); !ok {
		return result
	}

	open := &nodeHeap{{pos: start}}
	heap.Init(open)
	costSoFar := map[Hex]float64{start: 0}
	seq := 0

	for open.Len() > 0 {
		cur := heap.Pop(open).(pathNode)
		if cur.cost > costSoFar[cur.pos] {
			continue
		}
		for _, nb := range cur.pos.Neighbors() {
			if !enterable(tm, nb, costs, blocked) {
				continue
			}
			t, _ := tm.TileAt(nb)
			next := cur.cost + costs.Cost(t)
			if next > speed {
				continue
			}
			if prev, seen := costSoFar[nb]; seen && next >= prev {
				continue
			}
			costSoFar[nb] = next
			if !occupied[nb] {
				result[nb] = ReachableTile{Pos: nb, Cost: next}
			}
			seq++
			heap.Push(open, pathNode{pos: nb, cost: next, f: next, seq: seq})
		}
	}
	return result
}

// enterable reports whether a tile exists, is passable for the profile,
// and is not in the blocked set.
func enterable(tm TileMap, pos Hex, costs TerrainCosts, blocked map[Hex]bool) bool {
	if blocked[pos] {
		return false
	}
	t, ok := tm.TileAt(pos)
	if !ok {
		return false
	}
	return costs.Passable(t)
}

func reconstruct(cameFrom map[Hex]Hex, start, goal Hex) []Hex {
	var rev []Hex
	for p := goal; p != start; p = cameFrom[p] {
		rev = append(rev, p)
	}
	rev = append(rev, start)
	tiles := make([]Hex, len(rev))
	for i, p := range rev {
		tiles[len(rev)-1-i] = p
	}
	return tiles
}
