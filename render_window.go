package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/stewi1014/glgrid/config"
)

// NewRenderWindow creates a GLFW window with a 4.6 core context and
// makes it current. glfw.Init must have been called.
func NewRenderWindow(width, height int, title string) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(
		width,
		height,
		title,
		nil,
		nil,
	)

	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &RenderWindow{
		Window: window,
	}

	w.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}

	return w, nil
}

type RenderWindow struct {
	*glfw.Window
}

func runGLFW(cfg config.Config, logger *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	window, err := NewRenderWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		return err
	}
	defer window.Destroy()

	scene, err := NewScene(cfg, logger)
	if err != nil {
		return err
	}
	defer scene.Delete()

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		scene.Resize(width, height)
	})
	scene.Resize(window.GetFramebufferSize())

	for !window.ShouldClose() {
		scene.Draw()

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}
