package validator

import (
	"context"

	"svw.info/csudoku/internal/domain"
)

// FastValidator detects duplicate digits with per-unit bitmasks. With the
// diagonal variant enabled the two main diagonals are checked as well.
type FastValidator struct {
	diagonal bool
}

func New(diagonal bool) *FastValidator { return &FastValidator{diagonal: diagonal} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(cells [9]domain.CellCoord) {
		m := 0
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, cc)
			}
			m |= bit
		}
	}
	for _, unit := range units(v.diagonal) {
		scan(unit)
	}
	return len(conf) == 0, conf, nil
}

// units enumerates the coordinate lists of every unit: 9 rows, 9 columns,
// 9 blocks, plus the two diagonals when requested.
func units(diagonal bool) [][9]domain.CellCoord {
	out := make([][9]domain.CellCoord, 0, 29)
	for r := 0; r < 9; r++ {
		var u [9]domain.CellCoord
		for c := 0; c < 9; c++ {
			u[c] = domain.CellCoord{Row: r, Col: c}
		}
		out = append(out, u)
	}
	for c := 0; c < 9; c++ {
		var u [9]domain.CellCoord
		for r := 0; r < 9; r++ {
			u[r] = domain.CellCoord{Row: r, Col: c}
		}
		out = append(out, u)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var u [9]domain.CellCoord
			for i := 0; i < 9; i++ {
				u[i] = domain.CellCoord{Row: br*3 + i/3, Col: bc*3 + i%3}
			}
			out = append(out, u)
		}
	}
	if diagonal {
		var main, anti [9]domain.CellCoord
		for i := 0; i < 9; i++ {
			main[i] = domain.CellCoord{Row: i, Col: i}
			anti[i] = domain.CellCoord{Row: i, Col: 8 - i}
		}
		out = append(out, main, anti)
	}
	return out
}
