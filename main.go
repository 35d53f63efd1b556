package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/beka-birhanu/obake-meiro/config"
	"github.com/beka-birhanu/obake-meiro/game"
	"github.com/beka-birhanu/obake-meiro/game/maze"
	logger "github.com/beka-birhanu/obake-meiro/infrastruture/log"
)

// Global variables for dependencies
var (
	appConfig  config.Config
	appLogger  *logger.Logger
	gameLogger *logger.Logger
	obakeGame  *game.Game
)

func initLogger() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stderr)
	if err != nil {
		log.Printf("Creating app logger: %v", err)
		os.Exit(1)
	}
}

func initConfig() {
	appConfig = config.Load()
	appLogger.Info(fmt.Sprintf("Maze %dx%d with %d monsters", appConfig.MazeWidth, appConfig.MazeHeight, appConfig.MonsterCount))
}

func initGame() {
	var err error
	gameLogger, err = logger.New("GAME", config.ColorCyan, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game logger: %v", err))
		os.Exit(1)
	}

	obakeGame, err = game.New(game.Config{
		Width:       appConfig.MazeWidth,
		Height:      appConfig.MazeHeight,
		Obstacles:   appConfig.MonsterCount,
		MazeFactory: maze.Factory,
		Logger:      gameLogger,
		OnChange:    draw,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game initialized")
}

func draw(s game.Snapshot) {
	fmt.Printf("round %d  moves %d\n%s", s.Round(), s.Moves(), s)
}

func main() {
	initLogger()
	initConfig()
	initGame()

	snap, err := obakeGame.NewRound()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Starting round: %v", err))
		os.Exit(1)
	}
	draw(snap)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case "q", "quit":
			return
		case "n", "new":
			snap, err := obakeGame.NewRound()
			if err != nil {
				appLogger.Error(fmt.Sprintf("Starting round: %v", err))
				os.Exit(1)
			}
			draw(snap)
			continue
		}

		d, err := game.ParseDirection(input)
		if err != nil {
			appLogger.Warning(err.Error())
			continue
		}
		if _, err := obakeGame.HandleIntent(d); err != nil {
			appLogger.Error(fmt.Sprintf("Handling %s: %v", d, err))
		}
	}
}
