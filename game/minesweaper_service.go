package game

import (
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/models"
)

type ActionType int

const (
	// PrimaryAction reveals a cell.
	PrimaryAction ActionType = iota
	// SecondaryAction toggles a flag.
	SecondaryAction
)

func (t ActionType) String() string {
	switch t {
	case PrimaryAction:
		return "reveal"
	case SecondaryAction:
		return "flag"
	default:
		return "unknown"
	}
}

type Action struct {
	Type  ActionType
	Coord models.Coord
}

func NewAction(actionType ActionType, c models.Coord) Action {
	return Action{Type: actionType, Coord: c}
}

type GameService interface {
	InitGame()
	Dispatch(a Action) models.Outcome
	Outcome() models.Outcome
	Over() bool
}

// MinesweeperService applies player actions to the board and keeps the
// renderer in sync. It is not safe for concurrent use; all calls are made
// from the UI event loop.
type MinesweeperService struct {
	game     *models.Board
	renderer *Renderer
	log      logrus.FieldLogger
	outcome  models.Outcome
}

func NewMinesweeperService(board *models.Board, renderer *Renderer, log logrus.FieldLogger) *MinesweeperService {
	return &MinesweeperService{
		game:     board,
		renderer: renderer,
		log:      log,
	}
}

// InitGame draws the fresh board. Mines are planted on the first reveal.
func (s *MinesweeperService) InitGame() {
	s.renderer.DrawBoard(s.game)
	s.renderer.RenderStatus(s.game, s.outcome)
	s.log.WithFields(logrus.Fields{
		"size":  s.game.Size(),
		"mines": s.game.Mines(),
	}).Info("game started")
}

func (s *MinesweeperService) Outcome() models.Outcome {
	return s.outcome
}

// Over reports whether the game reached a win or a loss.
func (s *MinesweeperService) Over() bool {
	return s.outcome != models.Continue
}

// Dispatch applies a. Actions outside the board and any action after the
// game is over are ignored.
func (s *MinesweeperService) Dispatch(a Action) models.Outcome {
	if s.Over() || !s.game.InBounds(a.Coord) {
		return s.outcome
	}

	log := s.log.WithFields(logrus.Fields{
		"action": a.Type,
		"x":      a.Coord.X,
		"y":      a.Coord.Y,
	})

	switch a.Type {
	case PrimaryAction:
		s.reveal(a.Coord)
	case SecondaryAction:
		s.game.ToggleFlag(a.Coord)
		s.renderer.RenderCell(s.game, a.Coord)
	}
	s.renderer.RenderStatus(s.game, s.outcome)

	log.WithFields(logrus.Fields{
		"discovered": s.game.DiscoveredCount(),
		"flags":      s.game.FlagCount(),
		"outcome":    s.outcome,
	}).Debug("move")

	if s.Over() {
		s.log.WithFields(logrus.Fields{
			"outcome":    s.outcome,
			"discovered": s.game.DiscoveredCount(),
		}).Info("game over")
	}
	return s.outcome
}

func (s *MinesweeperService) reveal(c models.Coord) {
	// A flagged cell cannot be revealed, so it must not trigger planting
	// either: the safe first click has to be a real reveal.
	if cell, _ := s.game.CellAt(c); cell.Flagged {
		return
	}

	if !s.game.MinesPlaced() {
		if err := s.game.PlantMines(c); err != nil {
			s.log.WithError(err).Error("unable to plant mines")
			return
		}
		s.log.WithField("avoid", c).Debug("mines planted")
	}

	s.outcome = s.game.Reveal(c)
	s.renderer.DrawBoard(s.game)
	if s.outcome == models.Loss {
		s.renderer.RevealMines(s.game)
	}
}
