package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gotk3/gotk3/gtk"

	"github.com/stewi1014/glgrid/config"
)

// NewGLAreaWindow hosts the scene in a GtkGLArea. The scene is created
// when the area is realized and released when it is unrealized; errors
// are shown in a dialog and passed to quit.
func NewGLAreaWindow(
	app *gtk.Application,
	cfg config.Config,
	logger *slog.Logger,
	quit func(error),
) *GLAreaWindow {
	var err error
	w := &GLAreaWindow{
		cfg:    cfg,
		logger: logger,
		quit:   quit,
	}

	w.ApplicationWindow, err = gtk.ApplicationWindowNew(app)
	if err != nil {
		quit(fmt.Errorf("gtk.ApplicationWindowNew: %w", err))
		return nil
	}

	w.SetTitle(cfg.Window.Title)
	w.SetDefaultSize(cfg.Window.Width, cfg.Window.Height)

	w.gla, err = gtk.GLAreaNew()
	if err != nil {
		quit(fmt.Errorf("gtk.GLAreaNew: %w", err))
		return nil
	}

	w.gla.SetRequiredVersion(4, 6)
	w.gla.Connect("realize", w.glaRealize)
	w.gla.Connect("render", w.glaRender)
	w.gla.Connect("resize", w.glaResize)
	w.gla.Connect("unrealize", w.glaUnrealize)

	w.Add(w.gla)
	w.ShowAll()

	return w
}

type GLAreaWindow struct {
	*gtk.ApplicationWindow
	gla *gtk.GLArea

	cfg    config.Config
	logger *slog.Logger
	quit   func(error)

	scene *Scene
}

func (w *GLAreaWindow) glaRealize(gla *gtk.GLArea) {
	gla.MakeCurrent()
	if err := gla.GetError(); err != nil {
		w.fail(fmt.Errorf("gtk.GLArea: %w", err))
		return
	}

	if err := gl.Init(); err != nil {
		w.fail(fmt.Errorf("gl.Init: %w", err))
		return
	}

	scene, err := NewScene(w.cfg, w.logger)
	if err != nil {
		w.fail(err)
		return
	}
	w.scene = scene
}

func (w *GLAreaWindow) glaRender(gla *gtk.GLArea) {
	if w.scene == nil {
		return
	}
	w.scene.Draw()
}

func (w *GLAreaWindow) glaResize(gla *gtk.GLArea, width, height int) {
	if w.scene == nil {
		return
	}
	w.scene.Resize(width, height)
}

func (w *GLAreaWindow) glaUnrealize(gla *gtk.GLArea) {
	if w.scene == nil {
		return
	}
	gla.MakeCurrent()
	w.scene.Delete()
	w.scene = nil
}

func (w *GLAreaWindow) fail(err error) {
	NewErrorDialog(w.ApplicationWindow, err)
	w.quit(err)
}
