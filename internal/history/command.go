package history

import (
	"fmt"

	"github.com/dshills/sketchpad/internal/canvas"
)

// Command represents a reversible edit to a drawable collection.
type Command interface {
	// Execute applies the command and returns an error if it fails.
	Execute() error

	// Undo reverses the most recent Execute and returns an error if it fails.
	Undo() error

	// Description returns a human-readable description of the command.
	Description() string
}

// AddDrawableCommand appends one drawable to the collection.
// The same drawable is reused across undo/redo cycles; no copy is made.
type AddDrawableCommand struct {
	drawables *canvas.Drawables
	drawable  canvas.Drawable
}

// NewAddDrawableCommand creates a command that adds d to drawables.
func NewAddDrawableCommand(drawables *canvas.Drawables, d canvas.Drawable) *AddDrawableCommand {
	return &AddDrawableCommand{
		drawables: drawables,
		drawable:  d,
	}
}

// Drawable returns the drawable this command adds.
func (c *AddDrawableCommand) Drawable() canvas.Drawable {
	return c.drawable
}

// Execute appends the drawable to the end of the collection.
func (c *AddDrawableCommand) Execute() error {
	if c.drawable == nil {
		return canvas.ErrNilDrawable
	}
	c.drawables.Append(c.drawable)
	return nil
}

// Undo removes the first occurrence of the drawable.
// The drawable must still be present; if something outside the history
// removed it, Undo fails with canvas.ErrDrawableNotFound and changes nothing.
func (c *AddDrawableCommand) Undo() error {
	if err := c.drawables.Remove(c.drawable); err != nil {
		return fmt.Errorf("undo add: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *AddDrawableCommand) Description() string {
	if c.drawable == nil {
		return "Add"
	}
	return "Add " + c.drawable.Kind()
}

// ClearCommand removes every drawable from the collection.
type ClearCommand struct {
	drawables *canvas.Drawables
	backup    []canvas.Drawable
}

// NewClearCommand creates a clear command and snapshots the current
// contents of drawables.
func NewClearCommand(drawables *canvas.Drawables) *ClearCommand {
	return &ClearCommand{
		drawables: drawables,
		backup:    drawables.Snapshot(),
	}
}

// Execute empties the collection, including items added after the
// snapshot was taken.
func (c *ClearCommand) Execute() error {
	c.drawables.Clear()
	return nil
}

// Undo appends the snapshot, in its original order, after whatever the
// collection currently holds. It does not truncate first, so anything added
// since Execute is kept ahead of the restored items.
func (c *ClearCommand) Undo() error {
	c.drawables.Append(c.backup...)
	return nil
}

// Description returns a human-readable description.
func (c *ClearCommand) Description() string {
	switch len(c.backup) {
	case 0:
		return "Clear"
	case 1:
		return "Clear 1 drawable"
	default:
		return fmt.Sprintf("Clear %d drawables", len(c.backup))
	}
}
