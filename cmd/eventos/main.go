package main

import (
	"log"

	"github.com/anderssondelao/eventos-locales-app/internal/app"
	"github.com/anderssondelao/eventos-locales-app/internal/config"
)

func main() {
	log.SetPrefix("eventos: ")
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
