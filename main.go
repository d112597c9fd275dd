package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/dimaq12/minefield/game"
	"github.com/dimaq12/minefield/internal/config"
	"github.com/dimaq12/minefield/internal/logging"
	"github.com/dimaq12/minefield/models"
)

type exitCode int

const (
	exitWin         exitCode = 0
	exitLoss        exitCode = 1
	exitNoScreen    exitCode = 2
	exitConfigError exitCode = 3
)

func outcomeExitCode(outcome models.Outcome) exitCode {
	if outcome == models.Loss {
		return exitLoss
	}
	return exitWin
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func run() exitCode {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfigError
	}

	log := logging.NewOrDiscard(cfg.LogLevel, cfg.LogFile)
	log.WithFields(cfg.Fields()).Debug("config")

	board, err := models.NewBoard(config.GridSize, config.MineCount, newRand(cfg.Seed))
	if err != nil {
		log.WithError(err).Error("unable to create board")
		fmt.Fprintln(os.Stderr, err)
		return exitConfigError
	}

	screen, err := game.NewScreen()
	if err != nil {
		log.WithError(err).Error("unable to create window")
		fmt.Fprintln(os.Stderr, err)
		return exitNoScreen
	}

	renderer := game.NewRenderer(game.ASCIIGlyphs)
	service := game.NewMinesweeperService(board, renderer, log)
	controller := game.NewGameController(service, renderer, log, cfg.ASCII)

	fmt.Println("Start Game !")
	outcome, err := controller.Run(screen)
	if err != nil {
		log.WithError(err).Error("game loop failed")
		fmt.Fprintln(os.Stderr, err)
		return exitNoScreen
	}

	switch outcome {
	case models.Loss:
		fmt.Println("*LOUD EXPLOSION NOISE*")
	case models.Win:
		fmt.Println("CONGRATS YOU WIN THIS GAME !")
	default:
		log.Info("window closed")
	}
	return outcomeExitCode(outcome)
}

func main() {
	os.Exit(int(run()))
}
