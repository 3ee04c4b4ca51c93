package carve

import (
	"container/heap"
	"fmt"
)

// Cell is one coordinate of a seam.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Seam is a connected, row-monotonic path of one pixel per row, ordered from
// row 0 to row height-1. Consecutive cells differ by at most one column.
type Seam []Cell

// TotalEnergy sums the energy of every cell on the seam. The grid must have
// the shape the seam was found on.
func (s Seam) TotalEnergy(energy [][]int) int {
	total := 0
	for _, c := range s {
		total += energy[c.Row][c.Col]
	}
	return total
}

// FindSeam returns the minimum-total-energy top-to-bottom seam through the
// grid, or ErrNoSeam if the grid is empty or the search frontier empties
// before reaching the bottom row.
//
// The search is Dijkstra over the implicit grid graph with a lazy-decrease-key
// priority queue: shorter paths push duplicate entries, and stale entries are
// skipped when popped. Two reference behaviors are preserved deliberately:
//
//   - the search starts at (0, width/2), not at the cheapest top-row cell;
//   - from a cell only the two diagonal successors (row+1, col±1) are
//     explored; straight-down movement is never taken.
//
// Ties in accumulated energy resolve in discovery order, so results are fully
// deterministic for a given grid.
//
// Each cell has out-degree at most two, so total work is O(W*H*log(W*H)).
func FindSeam(energy [][]int) (Seam, error) {
	height := len(energy)
	if height == 0 || len(energy[0]) == 0 {
		return nil, fmt.Errorf("%w: empty energy grid", ErrNoSeam)
	}
	width := len(energy[0])

	const unreached = int(^uint(0) >> 1) // max int

	dist := make([][]int, height)
	visited := make([][]bool, height)
	// prevCol[r][c] is the column of the seam's cell in row r-1; movement is
	// strictly row-increasing so the column alone reconstructs the path.
	prevCol := make([][]int, height)
	for row := 0; row < height; row++ {
		dist[row] = make([]int, width)
		visited[row] = make([]bool, width)
		prevCol[row] = make([]int, width)
		for col := 0; col < width; col++ {
			dist[row][col] = unreached
			prevCol[row][col] = -1
		}
	}

	start := Cell{Row: 0, Col: width / 2}
	dist[0][start.Col] = energy[0][start.Col]

	pq := &cellQueue{}
	heap.Init(pq)
	pq.push(start, dist[0][start.Col])

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*cellItem)
		cur := item.cell

		// Stale lazy-deletion entry; a cheaper pop already finalized it.
		if visited[cur.Row][cur.Col] {
			continue
		}
		visited[cur.Row][cur.Col] = true

		if cur.Row == height-1 {
			return walkBack(cur, prevCol), nil
		}

		d := dist[cur.Row][cur.Col]
		for _, nextCol := range [2]int{cur.Col - 1, cur.Col + 1} {
			if nextCol < 0 || nextCol >= width {
				continue
			}
			nextRow := cur.Row + 1
			candidate := d + energy[nextRow][nextCol]
			if candidate >= dist[nextRow][nextCol] {
				continue
			}
			dist[nextRow][nextCol] = candidate
			prevCol[nextRow][nextCol] = cur.Col
			pq.push(Cell{Row: nextRow, Col: nextCol}, candidate)
		}
	}

	return nil, fmt.Errorf("%w: frontier exhausted before reaching row %d", ErrNoSeam, height-1)
}

// walkBack reconstructs the seam by following predecessor columns from the
// terminating bottom-row cell up to row 0, then flips it into row order.
func walkBack(end Cell, prevCol [][]int) Seam {
	seam := make(Seam, end.Row+1)
	col := end.Col
	for row := end.Row; row >= 0; row-- {
		seam[row] = Cell{Row: row, Col: col}
		col = prevCol[row][col]
	}
	return seam
}

// cellItem is a frontier entry: a cell with the accumulated energy it was
// discovered at. seq orders equal-distance entries by discovery time.
type cellItem struct {
	cell Cell
	dist int
	seq  int
}

// cellQueue is a min-heap of frontier entries ordered by accumulated energy,
// then discovery order. Duplicate entries for one cell are expected; the
// visited grid filters stale pops.
type cellQueue struct {
	items []*cellItem
	seq   int
}

func (q *cellQueue) push(c Cell, dist int) {
	heap.Push(q, &cellItem{cell: c, dist: dist, seq: q.seq})
	q.seq++
}

func (q *cellQueue) Len() int { return len(q.items) }

func (q *cellQueue) Less(i, j int) bool {
	if q.items[i].dist != q.items[j].dist {
		return q.items[i].dist < q.items[j].dist
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *cellQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *cellQueue) Push(x interface{}) { q.items = append(q.items, x.(*cellItem)) }

func (q *cellQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}
