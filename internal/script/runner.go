package script

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/sketchpad/internal/canvas"
	"github.com/dshills/sketchpad/internal/history"
)

// Target is the document a script acts on.
// *app.Document satisfies it.
type Target interface {
	AddDrawable(d canvas.Drawable) error
	Clear() error
	Undo() (history.Status, error)
	Redo() (history.Status, error)
	ResetHistory()
	Len() int
	CanUndo() bool
	CanRedo() bool
}

// Runner executes scripts against a target.
type Runner struct {
	target Target
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger disables logging.
func NewRunner(target Target, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		target: target,
		logger: logger.With("component", "script"),
	}
}

// RunFile runs the script at path, choosing the format by extension:
// .yaml and .yml for step lists, .lua for Lua.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &ScriptError{Name: path, Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return r.RunYAML(ctx, path, f)
	case ".lua":
		return r.RunLua(ctx, path, f)
	default:
		return &ScriptError{Name: path, Err: fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))}
	}
}

// undoN undoes up to n actions and returns how many were applied.
// It stops early when history runs out.
func (r *Runner) undoN(n int) (int, error) {
	for i := 0; i < n; i++ {
		status, err := r.target.Undo()
		if err != nil {
			return i, err
		}
		if status != history.Applied {
			r.logger.Debug("undo stopped early", "requested", n, "applied", i, "status", status)
			return i, nil
		}
	}
	return n, nil
}

// redoN redoes up to n actions and returns how many were applied.
// It stops early when nothing is left to redo.
func (r *Runner) redoN(n int) (int, error) {
	for i := 0; i < n; i++ {
		status, err := r.target.Redo()
		if err != nil {
			return i, err
		}
		if status != history.Applied {
			r.logger.Debug("redo stopped early", "requested", n, "applied", i, "status", status)
			return i, nil
		}
	}
	return n, nil
}
