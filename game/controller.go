package game

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/models"
)

// ErrScreen is returned when the terminal screen cannot be acquired.
var ErrScreen = errors.New("unable to create screen")

// NewScreen acquires the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreen, err)
	}
	return screen, nil
}

// GameController owns the application window and turns mouse and keyboard
// input into actions for the service.
type GameController struct {
	service    GameService
	renderer   *Renderer
	app        *tview.Application
	log        logrus.FieldLogger
	forceASCII bool

	// hover is the cell under the mouse, or models.None.
	hover models.Coord
}

func NewGameController(service GameService, renderer *Renderer, log logrus.FieldLogger, forceASCII bool) *GameController {
	c := &GameController{
		service:    service,
		renderer:   renderer,
		app:        tview.NewApplication(),
		log:        log,
		forceASCII: forceASCII,
		hover:      models.None,
	}
	c.app.EnableMouse(true)
	c.app.SetMouseCapture(c.handleMouse)
	c.renderer.Table().SetInputCapture(c.handleKey)
	return c
}

// Run shows the game on screen until the window is closed or the player
// dismisses the final result. The screen is released when Run returns.
func (c *GameController) Run(screen tcell.Screen) (models.Outcome, error) {
	c.app.SetScreen(screen)

	glyphs, degraded := PickGlyphs(screen, c.forceASCII)
	if degraded {
		c.log.Warn("terminal cannot display unicode glyphs, falling back to ascii")
	}
	c.renderer.SetGlyphs(glyphs)

	c.service.InitGame()
	c.app.SetRoot(c.renderer.Root(), true)

	if err := c.app.Run(); err != nil {
		return c.service.Outcome(), fmt.Errorf("%w: %v", ErrScreen, err)
	}
	return c.service.Outcome(), nil
}

// Stop closes the window.
func (c *GameController) Stop() {
	c.app.Stop()
}

// coordAt translates a screen position into a board coordinate.
func (c *GameController) coordAt(x, y int) models.Coord {
	row, col := c.renderer.Table().CellAt(x, y)
	if row < 0 || col < 0 {
		return models.None
	}
	return models.Coord{X: col, Y: row}
}

func (c *GameController) dispatch(a Action) {
	c.service.Dispatch(a)
	if c.service.Over() {
		c.renderer.Table().SetSelectable(false, false)
	}
}

func (c *GameController) handleMouse(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if event == nil {
		return event, action
	}
	c.hover = c.coordAt(event.Position())

	switch action {
	case tview.MouseLeftClick, tview.MouseRightClick:
		if c.service.Over() {
			c.Stop()
			return nil, action
		}
		if c.hover == models.None {
			return nil, action
		}
		actionType := PrimaryAction
		if action == tview.MouseRightClick {
			actionType = SecondaryAction
		}
		c.dispatch(NewAction(actionType, c.hover))
		return nil, action
	}
	return event, action
}

func (c *GameController) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if c.service.Over() {
		c.Stop()
		return nil
	}

	row, col := c.renderer.Table().GetSelection()
	selected := models.Coord{X: col, Y: row}

	switch event.Key() {
	case tcell.KeyEnter:
		c.dispatch(NewAction(PrimaryAction, selected))
		return nil
	case tcell.KeyEscape:
		c.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'f', 'F':
			c.dispatch(NewAction(SecondaryAction, selected))
			return nil
		case ' ':
			c.dispatch(NewAction(PrimaryAction, selected))
			return nil
		case 'q', 'Q':
			c.Stop()
			return nil
		}
	}

	return event
}
