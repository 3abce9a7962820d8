// Package app provides the main application structure for sketchpad.
// It loads configuration, builds the logger, and manages open documents,
// each with its own undo history.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/dshills/sketchpad/internal/config"
)

// Application owns the configuration, logger and open documents.
type Application struct {
	mu sync.RWMutex

	config config.Config
	logger *slog.Logger

	documents map[string]*Document
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// LogOutput is where logs are written. Defaults to os.Stderr.
	LogOutput io.Writer
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
		}
	}

	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(cfg.Log.Level)
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
	}
	logger := NewLogger(logCfg)

	logger.Debug("configuration loaded",
		"path", opts.ConfigPath,
		"width", cfg.Canvas.Width,
		"height", cfg.Canvas.Height,
		"max_entries", cfg.History.MaxEntries,
	)

	return &Application{
		config:    cfg,
		logger:    logger,
		documents: make(map[string]*Document),
	}, nil
}

// Config returns the active configuration.
func (a *Application) Config() config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// Logger returns the application logger.
func (a *Application) Logger() *slog.Logger {
	return a.logger
}

// NewDocument opens a new empty document under name.
func (a *Application) NewDocument(name string) (*Document, error) {
	if name == "" {
		name = "Untitled"
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.documents[name]; exists {
		return nil, NewOperationError("open", name, ErrDocumentAlreadyOpen)
	}

	doc := NewDocument(name, a.config, a.logger)
	a.documents[doc.Name] = doc
	a.logger.Info("document opened", "document", doc.Name, "id", doc.ID)
	return doc, nil
}

// Document returns the open document with the given name.
func (a *Application) Document(name string) (*Document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	doc, ok := a.documents[name]
	if !ok {
		return nil, NewOperationError("get", name, ErrDocumentNotFound)
	}
	return doc, nil
}

// CloseDocument closes a document and discards its history.
func (a *Application) CloseDocument(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	doc, ok := a.documents[name]
	if !ok {
		return NewOperationError("close", name, ErrDocumentNotFound)
	}

	doc.ResetHistory()
	delete(a.documents, name)
	a.logger.Info("document closed", "document", name)
	return nil
}

// Documents returns the names of open documents, sorted.
func (a *Application) Documents() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	names := make([]string, 0, len(a.documents))
	for name := range a.documents {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
