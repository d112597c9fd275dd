package models

type Outcome int

const (
	Continue Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// PlantMines places the board's mines at random, never on avoid, and
// updates the neighbour counts. It may only be called once per board.
func (b *Board) PlantMines(avoid Coord) error {
	if b.minesPlaced {
		return ErrMinesPlanted
	}

	// Every cell except the one to avoid is a candidate.
	candidates := make([]Coord, 0, len(b.cells))
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			c := Coord{X: x, Y: y}
			if c == avoid {
				continue
			}
			candidates = append(candidates, c)
		}
	}

	// Fisher-Yates shuffle, then the first b.mines candidates get a mine.
	b.r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	b.plant(candidates[:b.mines])
	return nil
}

// plant mines the given distinct coordinates and activates the board.
func (b *Board) plant(coords []Coord) {
	for _, c := range coords {
		b.cell(c).Mined = true
		b.neighbors(c, func(n Coord) {
			b.cell(n).AdjacentMines++
		})
	}
	b.minesPlaced = true
	b.state = Active
}

// Reveal discovers the cell at c. Revealing an empty cell opens its whole
// empty region together with the numbered cells bordering it.
func (b *Board) Reveal(c Coord) Outcome {
	if !b.InBounds(c) {
		return Continue
	}
	target := b.cell(c)
	if target.Discovered || target.Flagged {
		return Continue
	}

	if target.Mined {
		target.Discovered = true
		b.state = Lost
		return Loss
	}

	stack := []Coord{c}
	target.Discovered = true
	b.discoveredCount++

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.cell(cur).AdjacentMines > 0 {
			continue
		}
		b.neighbors(cur, func(n Coord) {
			cell := b.cell(n)
			if cell.Discovered || cell.Flagged || cell.Mined {
				return
			}
			cell.Discovered = true
			b.discoveredCount++
			stack = append(stack, n)
		})
	}

	if b.discoveredCount == len(b.cells)-b.mines {
		b.state = Won
		return Win
	}
	return Continue
}

// ToggleFlag flips the flag on a hidden cell. Discovered cells and
// coordinates outside the board are ignored.
func (b *Board) ToggleFlag(c Coord) {
	if !b.InBounds(c) {
		return
	}
	cell := b.cell(c)
	if cell.Discovered {
		return
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		b.flagCount++
	} else {
		b.flagCount--
	}
}
