package app

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/dshills/sketchpad/internal/canvas"
	"github.com/dshills/sketchpad/internal/config"
	"github.com/dshills/sketchpad/internal/history"
)

func TestNewScratchDocument(t *testing.T) {
	doc := NewScratchDocument()

	if doc.Name != "Untitled" {
		t.Errorf("expected name 'Untitled', got '%s'", doc.Name)
	}
	if doc.Drawables() == nil || doc.History() == nil {
		t.Fatal("expected drawables and history to be initialized")
	}
	if doc.IsModified() {
		t.Error("expected document to not be modified initially")
	}
	if w, h := doc.Size(); w != 640 || h != 480 {
		t.Errorf("Size() = %dx%d, want 640x480", w, h)
	}
}

func TestDocument_AddUndoRedo(t *testing.T) {
	doc := NewScratchDocument()
	rect := canvas.NewRect(0, 0, 10, 10, colornames.Red)

	if err := doc.AddDrawable(rect); err != nil {
		t.Fatalf("AddDrawable failed: %v", err)
	}
	if doc.Len() != 1 || !doc.IsModified() {
		t.Errorf("after add: len=%d modified=%v", doc.Len(), doc.IsModified())
	}

	status, err := doc.Undo()
	if err != nil || status != history.Applied {
		t.Fatalf("Undo = %v, %v", status, err)
	}
	if doc.Len() != 0 {
		t.Errorf("after undo: len=%d, want 0", doc.Len())
	}

	status, err = doc.Redo()
	if err != nil || status != history.Applied {
		t.Fatalf("Redo = %v, %v", status, err)
	}
	if !doc.Drawables().Contains(rect) {
		t.Error("redo should restore the same drawable")
	}
}

func TestDocument_ClearUndo(t *testing.T) {
	doc := NewScratchDocument()
	doc.AddDrawable(canvas.NewRect(0, 0, 1, 1, colornames.Red))
	doc.AddDrawable(canvas.NewRect(0, 0, 1, 1, colornames.Blue))

	if err := doc.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if doc.Len() != 0 {
		t.Errorf("after clear: len=%d", doc.Len())
	}

	doc.Undo()
	if doc.Len() != 2 {
		t.Errorf("after undo: len=%d, want 2", doc.Len())
	}
}

func TestDocument_UnderflowStatus(t *testing.T) {
	doc := NewScratchDocument()

	if status, err := doc.Undo(); err != nil || status != history.NothingToUndo {
		t.Errorf("Undo = %v, %v", status, err)
	}
	if status, err := doc.Redo(); err != nil || status != history.NothingToRedo {
		t.Errorf("Redo = %v, %v", status, err)
	}
	if doc.IsModified() {
		t.Error("no-op undo/redo should not mark document modified")
	}
}

func TestDocument_UndoDanglingReference(t *testing.T) {
	doc := NewScratchDocument()
	rect := canvas.NewRect(0, 0, 1, 1, colornames.Red)
	doc.AddDrawable(rect)
	doc.Drawables().Remove(rect)

	_, err := doc.Undo()
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "undo" {
		t.Fatalf("expected undo OperationError, got %v", err)
	}
	if !errors.Is(err, canvas.ErrDrawableNotFound) {
		t.Errorf("expected ErrDrawableNotFound in chain, got %v", err)
	}
}

func TestDocument_AddNil(t *testing.T) {
	doc := NewScratchDocument()
	if err := doc.AddDrawable(nil); !errors.Is(err, canvas.ErrNilDrawable) {
		t.Errorf("expected ErrNilDrawable, got %v", err)
	}
	if doc.CanUndo() {
		t.Error("failed add should not be recorded")
	}
}

func TestDocument_MaxEntriesFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.History.MaxEntries = 2
	doc := NewDocument("bounded", cfg, nil)

	for i := 0; i < 4; i++ {
		doc.AddDrawable(canvas.NewRect(0, 0, 1, 1, colornames.Red))
	}
	if doc.History().Len() != 2 {
		t.Errorf("history len = %d, want 2", doc.History().Len())
	}
}

func TestDocument_ResetHistory(t *testing.T) {
	doc := NewScratchDocument()
	doc.AddDrawable(canvas.NewRect(0, 0, 1, 1, colornames.Red))
	doc.ResetHistory()

	if doc.CanUndo() || doc.CanRedo() {
		t.Error("history should be empty after reset")
	}
	if doc.Len() != 1 {
		t.Errorf("drawables should be kept, len=%d", doc.Len())
	}
}

func TestDocument_WritePNG(t *testing.T) {
	cfg := config.Default()
	cfg.Canvas.Width, cfg.Canvas.Height = 16, 8
	doc := NewDocument("png", cfg, nil)
	doc.AddDrawable(canvas.NewRect(0, 0, 16, 8, colornames.Red))

	var buf bytes.Buffer
	if err := doc.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 16x8", b)
	}
	r, g, b, _ := img.At(4, 4).RGBA()
	if r>>8 != 0xff || g != 0 || b != 0 {
		t.Errorf("pixel = %v, want red", img.At(4, 4))
	}
}

func TestDocument_IndependentHistories(t *testing.T) {
	a := NewDocument("a", config.Default(), nil)
	b := NewDocument("b", config.Default(), nil)

	a.AddDrawable(canvas.NewRect(0, 0, 1, 1, colornames.Red))

	if b.CanUndo() {
		t.Error("documents should not share history")
	}
	if status, _ := b.Undo(); status != history.NothingToUndo {
		t.Errorf("b.Undo() = %v", status)
	}
	if a.Len() != 1 {
		t.Error("undo on b should not affect a")
	}
}
