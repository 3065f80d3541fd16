package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gotk3/gotk3/gtk"

	"github.com/stewi1014/glgrid/shader"
)

// CatchPanicToContext recovers a panic in a GTK callback and cancels
// the application with it, since the callback has no error return.
func CatchPanicToContext(ctxCancel context.CancelCauseFunc) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		err = fmt.Errorf("%w\n%v", err, string(debug.Stack()))
		if ctxCancel != nil {
			ctxCancel(err)
		}
	}
}

// NewErrorDialog shows err in a modal dialog and blocks until it is closed.
func NewErrorDialog(
	parent *gtk.ApplicationWindow,
	err error,
) {
	title, body := describeError(err)

	dialog := gtk.MessageDialogNew(
		parent,
		gtk.DIALOG_DESTROY_WITH_PARENT,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"%s",
		title,
	)
	dialog.FormatSecondaryText("%s", body)
	dialog.Connect("response", dialog.Destroy)

	messageArea, err := dialog.GetMessageArea()
	if err != nil {
		slog.Warn("dialog message area", "err", err)

	} else {
		messageArea.GetChildren().Foreach(func(item interface{}) {
			if widget, ok := item.(*gtk.Widget); ok {
				l, err := gtk.WidgetToLabel(widget)
				if err != nil {
					return
				}

				l.SetSelectable(true)
			}
		})
	}

	dialog.SetKeepAbove(true)
	dialog.Run()
}

// describeError splits err into a dialog title and the diagnostic text
// worth showing under it.
func describeError(err error) (title, body string) {
	var compileErr *shader.CompileError
	var linkErr *shader.LinkError

	switch {
	case errors.As(err, &compileErr):
		return fmt.Sprintf("The %v shader failed to compile", compileErr.Stage), compileErr.Log
	case errors.As(err, &linkErr):
		return "The shader program failed to link", linkErr.Log
	default:
		return "Error", err.Error()
	}
}
