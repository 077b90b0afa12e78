package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"

	"github.com/decker502/farmrescue/pkg/app"
	"github.com/decker502/farmrescue/pkg/embedded"
	"github.com/decker502/farmrescue/pkg/scenes"
)

func main() {
	cliApp := &cli.App{
		Name:  "farmrescue",
		Usage: "Farm Rescue: bring the runaway animals back to the barn",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose logging",
			},
			&cli.IntFlag{
				Name:  "level",
				Usage: "start at the given level (default: saved progress)",
			},
			&cli.BoolFlag{
				Name:  "reset-progress",
				Usage: "clear saved progress before starting",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:       c.Bool("verbose"),
		Level:         c.Int("level"),
		ResetProgress: c.Bool("reset-progress"),
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
	ebiten.SetWindowTitle("Farm Rescue")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if !gameApp.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] Warning: Failed to save on exit")
	}
	return runErr
}
