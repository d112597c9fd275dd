package models

import "fmt"

// InvalidBoardParamsError reports a board that cannot be built from the
// requested size and mine count.
type InvalidBoardParamsError struct {
	Size  int
	Mines int
}

func (e *InvalidBoardParamsError) Error() string {
	switch {
	case e.Size <= 0:
		return fmt.Sprintf("cannot create a board of size %d", e.Size)
	case e.Mines < 0:
		return fmt.Sprintf("cannot create a board with a negative amount of mines: %d", e.Mines)
	default:
		return fmt.Sprintf("not enough room for %d mines on a %dx%d board, at least one cell must stay safe",
			e.Mines, e.Size, e.Size)
	}
}
