package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/mvelarde/corazon/internal/config"
	"github.com/mvelarde/corazon/internal/game"
	"github.com/mvelarde/corazon/internal/message"
)

func main() {
	messagesPath := flag.String("messages", "mensajes.json", "path to the message document")
	audioPath := flag.String("audio", "", "optional background track (wav/mp3/flac)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	doc := message.LoadFile(*messagesPath, logger)

	g, err := game.New(doc, logger)
	if err != nil {
		logger.Fatal("setup failed", zap.Error(err))
	}
	if *audioPath != "" {
		if err := g.PlayMusic(*audioPath); err != nil {
			logger.Warn("background track unavailable", zap.String("path", *audioPath), zap.Error(err))
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Corazón — Enter: formar, M: música, Esc: salir")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
