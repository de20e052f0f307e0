// Command blockviz encrypts an ASCII-art penguin with AES in ECB and CBC
// mode and shows every ciphertext byte as a colored tile.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                      # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./cmd/blockviz/            # open the window
//	go run ./cmd/blockviz/ preview    # print the grids to the terminal instead
//
// Keys: Left/Right move the selected row, Up/Down select a row, A/D rotate
// the showcase shapes, J/L/I/K pan the camera, Escape quits.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/go-theft-auto/blockviz"
	"github.com/go-theft-auto/blockviz/backend/opengl"
	"github.com/go-theft-auto/blockviz/backend/term"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	app := cli.NewApp()

	app.Name = "blockviz"
	app.Usage = "Show AES ECB and CBC ciphertext as colored tiles"
	app.Version = "0.1.0"
	app.Flags = windowFlags
	app.Action = window

	app.Commands = []cli.Command{
		{
			Name:    "window",
			Aliases: []string{"w"},
			Usage:   "Open the OpenGL window (default)",
			Action:  window,
			Flags:   windowFlags,
		},
		{
			Name:    "preview",
			Aliases: []string{"p"},
			Usage:   "Print both grids to the terminal",
			Action:  preview,
			Flags:   sceneFlags,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, if any, and applies flag
// overrides on top.
func loadConfig(c *cli.Context) (blockviz.Config, error) {
	cfg := blockviz.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = blockviz.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if s := c.String("tiles"); s != "" {
		cfg.Layout.Tiles = s
	}
	if s := c.String("chaining"); s != "" {
		cfg.Cipher.Chaining = s
	}
	if c.Bool("showcase") {
		cfg.Scene.Showcase = true
	}
	if s := c.String("log-level"); s != "" {
		cfg.LogLevel = s
	}
	if s := c.String("source"); s != "" {
		cfg.Scene.SourceFile = s
	}
	return cfg, errors.Wrap(cfg.Validate(), "invalid configuration")
}

// setup loads the configuration, installs the logger and builds the scene.
func setup(c *cli.Context) (blockviz.Config, *blockviz.Scene, *slog.Logger, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return cfg, nil, nil, err
	}

	level, _ := blockviz.ParseLevel(cfg.LogLevel)
	logger := blockviz.NewLogger(os.Stderr, level)
	slog.SetDefault(logger)

	opts := []blockviz.SceneOption{blockviz.WithLogger(logger)}
	if cfg.Scene.SourceFile != "" {
		src, err := readSource(cfg.Scene.SourceFile)
		if err != nil {
			return cfg, nil, nil, err
		}
		opts = append(opts, blockviz.WithSourceText(src))
	}

	scene, err := blockviz.NewScene(cfg, opts...)
	if err != nil {
		return cfg, nil, nil, errors.Wrap(err, "can't build scene")
	}
	return cfg, scene, logger, nil
}

func readSource(path string) (blockviz.SourceText, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open source text")
	}
	defer file.Close()
	return blockviz.ReadSourceText(file)
}

// watchedFiles lists the files a reload depends on.
func watchedFiles(cfg blockviz.Config, c *cli.Context) []string {
	var files []string
	if path := c.String("config"); path != "" {
		files = append(files, path)
	}
	if cfg.Scene.SourceFile != "" {
		files = append(files, cfg.Scene.SourceFile)
	}
	return files
}

func preview(c *cli.Context) error {
	_, scene, _, err := setup(c)
	if err != nil {
		return err
	}
	return term.New(os.Stdout).WriteScene(scene)
}

func window(c *cli.Context) error {
	cfg, scene, logger, err := setup(c)
	if err != nil {
		return err
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "can't init glfw")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "can't create window")
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "can't init opengl")
	}
	logger.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	w, h := win.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(w, h)
	if err != nil {
		return errors.Wrap(err, "can't create renderer")
	}
	defer renderer.Delete()

	viewer := blockviz.NewViewer(renderer, scene)
	viewer.Resize(w, h)

	input := opengl.NewGLFWInputAdapter(win, viewer.Resize)

	var fw *fileWatcher
	if c.Bool("watch") {
		if fw, err = watchFiles(logger, watchedFiles(cfg, c)...); err != nil {
			return err
		}
		defer func() { fw.Close() }()
	}

	// Main loop.
	for !win.ShouldClose() {
		state := input.Update()
		if state.KeyPressed(blockviz.KeyEscape) {
			win.SetShouldClose(true)
		}

		select {
		case <-fw.Changed():
			nextCfg, next, _, err := setup(c)
			if err != nil {
				logger.Warn("reload failed, keeping the current scene", "err", err)
				break
			}
			viewer.SetScene(next)
			viewer.Resize(win.GetFramebufferSize())
			logger.Info("scene reloaded")

			// The reloaded config may name a different source file.
			if fw, err = fw.Retarget(watchedFiles(nextCfg, c)...); err != nil {
				logger.Warn("can't watch the reloaded files, keeping the old watch list", "err", err)
			}
		default:
		}

		if err := viewer.Frame(state, time.Now()); err != nil {
			return errors.Wrapf(err, "can't render frame %d", viewer.Frames())
		}

		win.SwapBuffers()
	}

	logger.Info("closing", "frames", viewer.Frames())
	return nil
}
