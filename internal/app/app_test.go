package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/sketchpad/internal/config"
)

func newTestApp(t *testing.T) *Application {
	t.Helper()
	a, err := New(Options{LogOutput: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

func TestNew_Defaults(t *testing.T) {
	a := newTestApp(t)

	if a.Config() != config.Default() {
		t.Errorf("Config() = %+v, want defaults", a.Config())
	}
	if a.Logger() == nil {
		t.Error("expected logger to be initialized")
	}
	if len(a.Documents()) != 0 {
		t.Error("expected no documents initially")
	}
}

func TestNew_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchpad.toml")
	if err := os.WriteFile(path, []byte("[canvas]\nwidth = 100\n"), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := New(Options{ConfigPath: path, LogOutput: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.Config().Canvas.Width != 100 {
		t.Errorf("Width = %d, want 100", a.Config().Canvas.Width)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[canvas]\nwidth = -5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := New(Options{ConfigPath: path})
	if !errors.Is(err, ErrInitialization) {
		t.Errorf("expected ErrInitialization, got %v", err)
	}
	if !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed in chain, got %v", err)
	}
}

func TestNew_LogLevelOverride(t *testing.T) {
	var buf bytes.Buffer
	a, err := New(Options{LogLevel: "debug", LogOutput: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.Config().Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", a.Config().Log.Level)
	}
	if !strings.Contains(buf.String(), "configuration loaded") {
		t.Errorf("debug output missing: %q", buf.String())
	}

	if _, err := New(Options{LogLevel: "chatty"}); !errors.Is(err, ErrInitialization) {
		t.Errorf("expected ErrInitialization for bad level, got %v", err)
	}
}

func TestApplication_DocumentLifecycle(t *testing.T) {
	a := newTestApp(t)

	doc, err := a.NewDocument("sketch")
	if err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}

	if _, err := a.NewDocument("sketch"); !errors.Is(err, ErrDocumentAlreadyOpen) {
		t.Errorf("expected ErrDocumentAlreadyOpen, got %v", err)
	}

	got, err := a.Document("sketch")
	if err != nil || got != doc {
		t.Errorf("Document() = %v, %v", got, err)
	}

	a.NewDocument("")
	if names := a.Documents(); !reflect.DeepEqual(names, []string{"Untitled", "sketch"}) {
		t.Errorf("Documents() = %v", names)
	}

	if err := a.CloseDocument("sketch"); err != nil {
		t.Fatalf("CloseDocument failed: %v", err)
	}
	if _, err := a.Document("sketch"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := a.CloseDocument("sketch"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound on second close, got %v", err)
	}
}
