package levels

// FindSpawn returns the first Spawn tile in row-major order.
func (g *Grid) FindSpawn() (x, y int, ok bool) {
	if g == nil {
		return 0, 0, false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y*g.Width+x] == Spawn {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// SpawnOrCenter is FindSpawn falling back to the grid center.
func (g *Grid) SpawnOrCenter() (x, y int) {
	if x, y, ok := g.FindSpawn(); ok {
		return x, y
	}
	if g == nil {
		return 0, 0
	}
	return g.Width / 2, g.Height / 2
}
