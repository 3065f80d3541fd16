package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/stewi1014/glgrid/config"
)

const applicationID = "com.github.stewi1014.glgrid"

func NewApplication(cfg config.Config, logger *slog.Logger) (*Application, error) {
	app, err := gtk.ApplicationNew(applicationID, glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		return nil, fmt.Errorf("gtk.ApplicationNew failed: %w", err)
	}

	a := &Application{
		Application: app,
		cfg:         cfg,
		logger:      logger,
	}

	app.Connect("activate", a.onActivate)

	return a, nil
}

// Application runs the scene in a single GTK window.
type Application struct {
	*gtk.Application
	cfg    config.Config
	logger *slog.Logger
	quit   context.CancelCauseFunc
}

// Run blocks until the window is closed, ctx is done, or the scene
// fails, and returns the failure.
func (a *Application) Run(ctx context.Context) error {
	appContext, appQuit := context.WithCancelCause(ctx)
	a.quit = appQuit

	go func() {
		<-appContext.Done()
		glib.IdleAdd(func() {
			a.Quit()
		})
	}()
	a.Application.Run(nil)

	appQuit(nil)
	if err := context.Cause(appContext); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *Application) onActivate() {
	defer CatchPanicToContext(a.quit)

	w := NewGLAreaWindow(a.Application, a.cfg, a.logger, a.quit)
	if w == nil {
		return
	}
	w.Connect("destroy", func() {
		a.quit(nil)
	})
}

func runGTK(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	gtk.Init(nil)

	app, err := NewApplication(cfg, logger)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
