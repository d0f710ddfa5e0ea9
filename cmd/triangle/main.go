// Package main opens a window and draws a triangle with OpenGL until Escape is pressed.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"go.creack.net/triangle/cli"
	"go.creack.net/triangle/glfwgl"
	"go.creack.net/triangle/render"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func run(cfg render.Config, logger *slog.Logger) error {
	ctx, err := render.Bootstrap(glfwgl.New(logger), cfg, render.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to bootstrap: %w", err)
	}
	defer ctx.Close()

	pipeline, err := render.NewPipeline(ctx.Device, cfg, render.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	// GPU objects go before the backend.
	defer pipeline.Close()

	st := ctx.Run(pipeline)
	logger.Debug("bye", "frames", st.Frames)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	fs, settings := cli.NewFlagSet(os.Args[0])
	cfg, err := cli.ParseConfig(fs, settings, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse cli config: %s.", err)
	}

	if err := run(cfg, settings.Logger(os.Stdout)); err != nil {
		log.Fatalf("fail: %s.", err)
	}
}
