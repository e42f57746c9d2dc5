// Package grid is the format adapter between puzzle strings, candidate cell
// maps, and board matrices. It owns the label scheme (rows A-I, columns 1-9)
// and all malformed-input handling; the solver core only ever sees a complete
// cell map.
package grid

import (
	"fmt"
	"strings"

	"svw.info/csudoku/internal/domain"
)

const (
	rows = "ABCDEFGHI"
	cols = "123456789"
	all  = "123456789"
)

// GridLen is the length of a puzzle string.
const GridLen = 81

var boxes = func() []string {
	out := make([]string, 0, GridLen)
	for _, r := range rows {
		for _, c := range cols {
			out = append(out, string(r)+string(c))
		}
	}
	return out
}()

// Boxes returns all 81 box labels in row-major order.
func Boxes() []string { return boxes }

// BoxAt returns the label of the box at (row, col), both zero-based.
func BoxAt(r, c int) string { return rows[r:r+1] + cols[c:c+1] }

// BoxCoord converts a box label back to zero-based coordinates.
func BoxCoord(box string) domain.CellCoord {
	return domain.CellCoord{Row: int(box[0] - 'A'), Col: int(box[1] - '1')}
}

// Parse converts an 81-character puzzle string into a cell map: digits become
// single-candidate givens, any other character becomes the full candidate
// string. The only possible failure is a wrong-length input.
func Parse(g string) (map[string]string, error) {
	if len(g) != GridLen {
		return nil, fmt.Errorf("grid must be %d characters, got %d", GridLen, len(g))
	}
	cells := make(map[string]string, GridLen)
	for i, box := range boxes {
		ch := g[i : i+1]
		if strings.Contains(all, ch) {
			cells[box] = ch
		} else {
			cells[box] = all
		}
	}
	return cells, nil
}

// String flattens a cell map back into puzzle-string form, writing '.' for
// any box not yet down to a single candidate.
func String(cells map[string]string) string {
	var b strings.Builder
	b.Grow(GridLen)
	for _, box := range boxes {
		if d := cells[box]; len(d) == 1 {
			b.WriteString(d)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Render draws the cell map as a 2-D grid with centered candidate strings and
// 3x3 block separators.
func Render(cells map[string]string) string {
	width := 1
	for _, box := range boxes {
		if n := len(cells[box]); n+1 > width {
			width = n + 1
		}
	}
	block := strings.Repeat("-", width*3)
	line := block + "+" + block + "+" + block

	var b strings.Builder
	for ri, r := range rows {
		for ci, c := range cols {
			b.WriteString(center(cells[string(r)+string(c)], width))
			if ci == 2 || ci == 5 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		if ri == 2 || ri == 5 {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// FromBoard flattens a board matrix into puzzle-string form (0 becomes '.').
func FromBoard(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(GridLen)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v >= 1 && v <= 9 {
				sb.WriteByte('0' + v)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ToBoard converts a cell map into a board matrix; boxes not down to a single
// candidate become empty cells.
func ToBoard(cells map[string]string) *domain.Board {
	out := &domain.Board{}
	for i, box := range boxes {
		if d := cells[box]; len(d) == 1 {
			out.Values[i/9][i%9] = d[0] - '0'
		}
	}
	return out
}
