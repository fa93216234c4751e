package maze

// workingSet holds the cells not yet in the maze. Removal swaps the last
// element into the freed slot, so the order depends on the removal history
// but stays deterministic for a given random sequence.
type workingSet struct {
	cells []*Cell
	index map[Coordinate]int
}

func newWorkingSet(cells []*Cell) *workingSet {
	ws := &workingSet{
		cells: make([]*Cell, len(cells)),
		index: make(map[Coordinate]int, len(cells)),
	}
	copy(ws.cells, cells)
	for i, c := range ws.cells {
		ws.index[c.coord] = i
	}
	return ws
}

func (ws *workingSet) len() int {
	return len(ws.cells)
}

func (ws *workingSet) contains(c *Cell) bool {
	_, ok := ws.index[c.coord]
	return ok
}

// random picks a cell uniformly. The set must not be empty.
func (ws *workingSet) random(rng RandSource) *Cell {
	return ws.cells[rng.Intn(len(ws.cells))]
}

func (ws *workingSet) remove(c *Cell) bool {
	i, ok := ws.index[c.coord]
	if !ok {
		return false
	}
	last := len(ws.cells) - 1
	ws.cells[i] = ws.cells[last]
	ws.index[ws.cells[i].coord] = i
	ws.cells = ws.cells[:last]
	delete(ws.index, c.coord)
	return true
}
