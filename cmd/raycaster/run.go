package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/render"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/render/term"
	"chosenoffset.com/raycaster/internal/scene"
)

func runWindow(opts scene.Options) error {
	cfg, gameMap, err := scene.Load(opts)
	if err != nil {
		return err
	}

	g, err := game.New(cfg, gameMap, ebitenrender.NewRenderer(), ebitenrender.NewInputManager())
	if err != nil {
		return err
	}

	engine := ebitenrender.NewEngine()
	configureEngine(engine, cfg)

	log.Println("Starting game...")
	return ignoreQuit(engine.RunGame(g))
}

func runTerm(opts scene.Options, logPath string) error {
	// tcell owns the terminal, so log lines must go elsewhere.
	if logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, gameMap, err := scene.Load(opts)
	if err != nil {
		return err
	}

	screen, err := term.NewScreen()
	if err != nil {
		return err
	}
	input := term.NewInputManager()

	g, err := game.New(cfg, gameMap, term.NewRenderer(), input)
	if err != nil {
		return err
	}

	engine := term.NewEngine(screen, input)
	configureEngine(engine, cfg)

	log.Println("Starting game in terminal...")
	return ignoreQuit(engine.RunGame(g))
}

func configureEngine(engine render.Engine, cfg *config.Config) {
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
}

func ignoreQuit(err error) error {
	if errors.Is(err, game.ErrQuit) {
		log.Println("Game over")
		return nil
	}
	return err
}
