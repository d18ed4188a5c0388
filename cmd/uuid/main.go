package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/replicate/uuidkit/logging"
)

func main() {
	log := logging.New("uuid")

	err := newApp(os.Stdout, log).Run(os.Args)
	if err != nil {
		log.Error("command failed", zap.Error(err))
	}
	_ = log.Sync()

	if err != nil {
		os.Exit(1)
	}
}
