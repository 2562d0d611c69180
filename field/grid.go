package field

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// grid buckets particle indices into square cells one connection distance
// wide, so every pair within range sits in the same or an adjacent cell.
type grid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int
}

func newGrid(cellSize float64) *grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &grid{cellSize: cellSize}
}

// reset resizes the cell array for a width x height surface
func (g *grid) reset(width, height float64) {
	// Positions may sit exactly on the far edge after wrapping, hence +1
	g.cols = int(width/g.cellSize) + 1
	g.rows = int(height/g.cellSize) + 1
	g.cells = make([][]int, g.cols*g.rows)
}

// cellOf converts a position to clamped cell coordinates
func (g *grid) cellOf(pos r2.Vec) (int, int) {
	cx := int(math.Floor(pos.X / g.cellSize))
	cy := int(math.Floor(pos.Y / g.cellSize))
	cx = max(0, min(cx, g.cols-1))
	cy = max(0, min(cy, g.rows-1))
	return cx, cy
}

func (g *grid) connections(dst []Connection, particles []Particle) []Connection {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i := range particles {
		cx, cy := g.cellOf(particles[i].Pos)
		idx := cy*g.cols + cx
		g.cells[idx] = append(g.cells[idx], i)
	}

	start := len(dst)
	for i := range particles {
		cx, cy := g.cellOf(particles[i].Pos)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := cx+dx, cy+dy
				if nx < 0 || nx >= g.cols || ny < 0 || ny >= g.rows {
					continue
				}
				for _, j := range g.cells[ny*g.cols+nx] {
					if j <= i {
						continue
					}
					distance := r2.Norm(r2.Sub(particles[i].Pos, particles[j].Pos))
					if distance < g.cellSize {
						dst = append(dst, Connection{I: i, J: j, Distance: distance})
					}
				}
			}
		}
	}

	// Match the pairwise scan order
	found := dst[start:]
	sort.Slice(found, func(a, b int) bool {
		if found[a].I != found[b].I {
			return found[a].I < found[b].I
		}
		return found[a].J < found[b].J
	})
	return dst
}
