package hexwar

// TileMap is the minimal map abstraction the pathfinder needs: terrain
// lookup by coordinate. Absent tiles are off the board.
type TileMap interface {
	TileAt(h Hex) (Terrain, bool)
}

// Grid is a sparse map-backed board.
type Grid struct {
	tiles map[Hex]Terrain
}

// NewGrid returns an empty board.
func NewGrid() *Grid {
	return &Grid{tiles: make(map[Hex]Terrain)}
}

// SetTile places terrain at the given coordinate, replacing any
// existing tile.
func (g *Grid) SetTile(h Hex, t Terrain) {
	g.tiles[h] = t
}

// TileAt returns the terrain at the coordinate, or false if the
// coordinate is off the board.
func (g *Grid) TileAt(h Hex) (Terrain, bool) {
	t, ok := g.tiles[h]
	return t, ok
}

// Len returns the number of tiles on the board.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Tiles returns the underlying tile map. Callers must not mutate it.
func (g *Grid) Tiles() map[Hex]Terrain {
	return g.tiles
}

// Clone returns an independent copy of the board.
func (g *Grid) Clone() *Grid {
	c := NewGrid()
	for h, t := range g.tiles {
		c.tiles[h] = t
	}
	return c
}
