package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/tobiclare/studylog/app"
	"github.com/tobiclare/studylog/config"
)

func run(args []string) error {
	config.InitializePaths()

	config.InitLogger()

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
