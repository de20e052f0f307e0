package main

import "github.com/urfave/cli"

var (
	flgConfig   = cli.StringFlag{Name: "config, c", Usage: "TOML configuration file"}
	flgTiles    = cli.StringFlag{Name: "tiles, t", Usage: "tile mode: grayscale or rgb (overrides config)"}
	flgChaining = cli.StringFlag{Name: "chaining", Usage: "CBC chaining: block or line (overrides config)"}
	flgShowcase = cli.BoolFlag{Name: "showcase", Usage: "add the rotating quad and triangle rows"}
	flgLogLevel = cli.StringFlag{Name: "log-level, l", Usage: "log level: debug, info, warn or error (overrides config)"}
	flgSource   = cli.StringFlag{Name: "source, s", Usage: "ASCII art file to encrypt instead of the penguin"}
	flgWatch    = cli.BoolFlag{Name: "watch", Usage: "rebuild the scene when the config or source file changes"}
)

var (
	sceneFlags  = []cli.Flag{flgConfig, flgTiles, flgChaining, flgShowcase, flgLogLevel, flgSource}
	windowFlags = append([]cli.Flag{flgWatch}, sceneFlags...)
)
