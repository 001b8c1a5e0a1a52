package main

import (
	"os"

	"github.com/subharanjan2019/BotLibre/cmd/botlibre/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
