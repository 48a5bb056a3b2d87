package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/homestead/client"
	"github.com/lixenwraith/homestead/config"
)

func main() {
	cfgPath := flag.String("config", "homestead.yaml", "config file path")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	game, err := client.NewGame(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("client startup failed")
	}
	defer game.Shutdown()

	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle("homestead")

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("game loop exited")
		os.Exit(1)
	}
}
