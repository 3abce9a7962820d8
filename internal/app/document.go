package app

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/sketchpad/internal/canvas"
	"github.com/dshills/sketchpad/internal/config"
	"github.com/dshills/sketchpad/internal/history"
)

// Document is one open sketch: its drawables and their undo history.
// Each document owns an independent history.
type Document struct {
	// Name is the display name.
	Name string

	// ID identifies the document for the lifetime of the process.
	ID uuid.UUID

	drawables *canvas.Drawables
	history   *history.Stack

	width      int
	height     int
	background color.RGBA

	// Modified indicates unsaved changes.
	modified atomic.Bool

	logger *slog.Logger
}

// NewDocument creates an empty document sized and bounded by cfg.
// A nil logger disables logging.
func NewDocument(name string, cfg config.Config, logger *slog.Logger) *Document {
	if name == "" {
		name = "Untitled"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("document", name)

	return &Document{
		Name:      name,
		ID:        uuid.New(),
		drawables: canvas.NewDrawables(),
		history: history.NewStack(
			history.WithMaxEntries(cfg.History.MaxEntries),
			history.WithLogger(logger.With("component", "history")),
		),
		width:      cfg.Canvas.Width,
		height:     cfg.Canvas.Height,
		background: cfg.BackgroundColor(),
		logger:     logger,
	}
}

// NewScratchDocument creates an untitled document with default settings.
func NewScratchDocument() *Document {
	return NewDocument("", config.Default(), nil)
}

// Drawables returns the document's drawable collection.
func (d *Document) Drawables() *canvas.Drawables {
	return d.drawables
}

// History returns the document's undo history.
func (d *Document) History() *history.Stack {
	return d.history
}

// AddDrawable adds a drawable as an undoable action.
func (d *Document) AddDrawable(dr canvas.Drawable) error {
	if err := d.history.Execute(history.NewAddDrawableCommand(d.drawables, dr)); err != nil {
		return NewOperationError("add", d.Name, err)
	}
	d.SetModified(true)
	return nil
}

// Clear removes every drawable as an undoable action.
func (d *Document) Clear() error {
	if err := d.history.Execute(history.NewClearCommand(d.drawables)); err != nil {
		return NewOperationError("clear", d.Name, err)
	}
	d.SetModified(true)
	return nil
}

// Undo reverses the most recent applied action.
func (d *Document) Undo() (history.Status, error) {
	status, err := d.history.Undo()
	if err != nil {
		return status, NewOperationError("undo", d.Name, err)
	}
	if status == history.Applied {
		d.SetModified(true)
	}
	return status, nil
}

// Redo re-applies the most recently undone action.
func (d *Document) Redo() (history.Status, error) {
	status, err := d.history.Redo()
	if err != nil {
		return status, NewOperationError("redo", d.Name, err)
	}
	if status == history.Applied {
		d.SetModified(true)
	}
	return status, nil
}

// ResetHistory discards the undo history. Drawables are kept.
func (d *Document) ResetHistory() {
	d.history.Reset()
}

// Len returns the number of drawables.
func (d *Document) Len() int {
	return d.drawables.Len()
}

// CanUndo returns true if undo is available.
func (d *Document) CanUndo() bool {
	return d.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (d *Document) CanRedo() bool {
	return d.history.CanRedo()
}

// Size returns the canvas dimensions.
func (d *Document) Size() (width, height int) {
	return d.width, d.height
}

// Render paints the current drawables.
func (d *Document) Render() (*image.RGBA, error) {
	img, err := canvas.Render(d.drawables, d.width, d.height, d.background)
	if err != nil {
		return nil, NewOperationError("render", d.Name, err)
	}
	return img, nil
}

// WritePNG renders the document and writes it to w as PNG.
func (d *Document) WritePNG(w io.Writer) error {
	img, err := d.Render()
	if err != nil {
		return err
	}
	if err := canvas.EncodePNG(w, img); err != nil {
		return NewOperationError("render", d.Name, err)
	}
	d.logger.Debug("rendered", "drawables", d.Len(), "size", fmt.Sprintf("%dx%d", d.width, d.height))
	return nil
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.modified.Load()
}

// SetModified sets the modified flag.
func (d *Document) SetModified(modified bool) {
	d.modified.Store(modified)
}
