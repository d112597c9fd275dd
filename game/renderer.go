package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/minefield/internal/config"
	"github.com/dimaq12/minefield/models"
)

var countColors = [...]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorBlack,
	8: tcell.ColorGray,
}

const (
	hiddenBackground     = tcell.ColorDimGray
	discoveredBackground = tcell.ColorLightGray
	explodedBackground   = tcell.ColorRed
)

type Renderer struct {
	boardTable *tview.Table
	status     *tview.TextView
	layout     *tview.Flex
	glyphs     Glyphs
}

func NewRenderer(glyphs Glyphs) *Renderer {
	r := &Renderer{
		boardTable: tview.NewTable(),
		status:     tview.NewTextView().SetDynamicColors(false),
		glyphs:     glyphs,
	}
	r.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.boardTable, 0, 1, true).
		AddItem(r.status, 1, 0, false)
	return r
}

// Root is the primitive to hand to the application.
func (r *Renderer) Root() tview.Primitive {
	return r.layout
}

func (r *Renderer) Table() *tview.Table {
	return r.boardTable
}

func (r *Renderer) SetGlyphs(glyphs Glyphs) {
	r.glyphs = glyphs
}

func (r *Renderer) DrawBoard(board *models.Board) {
	for y := 0; y < board.Size(); y++ {
		for x := 0; x < board.Size(); x++ {
			r.RenderCell(board, models.Coord{X: x, Y: y})
		}
	}

	r.boardTable.SetSelectable(true, true)
	r.boardTable.SetFixed(board.Size(), board.Size())
}

func (r *Renderer) pad(s string) string {
	side := strings.Repeat(" ", (config.CellWidth-1)/2)
	return side + s + side
}

func (r *Renderer) RenderCell(board *models.Board, c models.Coord) {
	cell, ok := board.CellAt(c)
	if !ok {
		return
	}

	text := string(r.glyphs.Hidden)
	fg, bg := tcell.ColorWhite, hiddenBackground
	switch {
	case cell.Flagged:
		text = string(r.glyphs.Flag)
		fg = tcell.ColorRed
	case cell.Discovered && cell.Mined:
		text = string(r.glyphs.Mine)
		fg, bg = tcell.ColorBlack, explodedBackground
	case cell.Discovered && cell.AdjacentMines > 0:
		text = strconv.Itoa(cell.AdjacentMines)
		fg, bg = countColors[cell.AdjacentMines], discoveredBackground
	case cell.Discovered:
		text = string(r.glyphs.Empty)
		fg, bg = tcell.ColorGray, discoveredBackground
	}

	r.setCell(c, text, fg, bg)
}

func (r *Renderer) setCell(c models.Coord, text string, fg, bg tcell.Color) {
	r.boardTable.SetCell(c.Y, c.X, tview.NewTableCell(r.pad(text)).
		SetAlign(tview.AlignCenter).
		SetTextColor(fg).
		SetBackgroundColor(bg))
}

// RevealMines shows every mine that has not been flagged. The exploded mine
// is already discovered and keeps its own colouring.
func (r *Renderer) RevealMines(board *models.Board) {
	for _, c := range board.Mined() {
		cell, _ := board.CellAt(c)
		if cell.Discovered || cell.Flagged {
			continue
		}
		r.setCell(c, string(r.glyphs.Mine), tcell.ColorBlack, hiddenBackground)
	}
}

func (r *Renderer) RenderStatus(board *models.Board, outcome models.Outcome) {
	text := fmt.Sprintf("Mines: %d", board.MinesRemaining())
	switch outcome {
	case models.Win:
		text += "  You win! Press any key to exit."
	case models.Loss:
		text += "  Boom! Press any key to exit."
	}
	r.status.SetText(text)
}
