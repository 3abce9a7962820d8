package history

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// entry wraps a command with metadata.
type entry struct {
	command   Command
	timestamp time.Time
}

// OperationInfo provides read-only info about a recorded command.
// Used for displaying undo/redo menus to users.
type OperationInfo struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the command was recorded
}

// Stack is a linear undo/redo history.
//
// Entries at indices [0, position] are applied; entries after position are
// redo-pending. position is -1 when nothing is applied.
type Stack struct {
	mu sync.Mutex

	entries  []*entry
	position int

	// Configuration
	maxEntries int
	logger     *slog.Logger
}

// Option configures a Stack.
type Option func(*Stack)

// WithMaxEntries bounds the number of recorded commands. When exceeded, the
// oldest entries are dropped. Zero or negative means unbounded.
func WithMaxEntries(n int) Option {
	return func(s *Stack) {
		if n < 0 {
			n = 0
		}
		s.maxEntries = n
	}
}

// WithLogger sets the logger used for diagnostics. Nil restores the silent
// default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Stack) {
		if l == nil {
			l = newNopLogger()
		}
		s.logger = l
	}
}

// NewStack creates an empty history.
func NewStack(opts ...Option) *Stack {
	s := &Stack{
		position: -1,
		logger:   newNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset discards all history.
func (s *Stack) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.position = -1
	s.logger.Debug("history reset")
}

// Add records cmd as the newest applied command without executing it.
// Redo-pending entries are discarded.
func (s *Stack) Add(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.addLocked(cmd)
	return nil
}

// addLocked records a command without acquiring the lock.
func (s *Stack) addLocked(cmd Command) {
	// Drop redo-pending entries; they become unreachable.
	if dropped := len(s.entries) - (s.position + 1); dropped > 0 {
		clear(s.entries[s.position+1:])
		s.entries = s.entries[:s.position+1]
		s.logger.Debug("discarded redo entries", "count", dropped)
	}

	s.entries = append(s.entries, &entry{
		command:   cmd,
		timestamp: time.Now(),
	})
	s.position = len(s.entries) - 1

	// Enforce max entries
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		excess := len(s.entries) - s.maxEntries
		clear(s.entries[:excess])
		s.entries = s.entries[excess:]
		s.position -= excess
	}
}

// Execute runs cmd and records it as the newest applied command.
// This is the entry point for performing a new reversible action.
// If cmd fails, nothing is recorded and the history is unchanged.
func (s *Stack) Execute(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("execute %q: %w", cmd.Description(), err)
	}

	s.addLocked(cmd)
	s.logger.Debug("executed", "command", cmd.Description(), "position", s.position)
	return nil
}

// Undo reverses the command at the cursor and moves the cursor back.
// With nothing applied it returns NothingToUndo and changes nothing.
// If the command fails the cursor stays put and Failed is returned.
func (s *Stack) Undo() (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 || s.position < 0 {
		s.logger.Debug("nothing to undo")
		return NothingToUndo, nil
	}

	e := s.entries[s.position]
	if err := e.command.Undo(); err != nil {
		s.logger.Warn("undo failed", "command", e.command.Description(), "error", err)
		return Failed, err
	}

	s.position--
	s.logger.Debug("undone", "command", e.command.Description(), "position", s.position)
	return Applied, nil
}

// Redo re-executes the command after the cursor and moves the cursor forward.
// With nothing redo-pending it returns NothingToRedo and changes nothing.
// If the command fails the cursor stays put and Failed is returned.
func (s *Stack) Redo() (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.position+1 >= len(s.entries) {
		s.logger.Debug("nothing to redo")
		return NothingToRedo, nil
	}

	e := s.entries[s.position+1]
	if err := e.command.Execute(); err != nil {
		s.logger.Warn("redo failed", "command", e.command.Description(), "error", err)
		return Failed, err
	}

	s.position++
	s.logger.Debug("redone", "command", e.command.Description(), "position", s.position)
	return Applied, nil
}

// CanUndo returns true if undo is available.
func (s *Stack) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position >= 0
}

// CanRedo returns true if redo is available.
func (s *Stack) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position+1 < len(s.entries)
}

// Len returns the number of recorded commands, applied or redo-pending.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Position returns the index of the last applied command, or -1.
func (s *Stack) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// UndoCount returns the number of undo operations available.
func (s *Stack) UndoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position + 1
}

// RedoCount returns the number of redo operations available.
func (s *Stack) RedoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) - s.position - 1
}

// UndoInfo returns the applied commands, oldest first.
// The last element is the next one Undo would reverse.
func (s *Stack) UndoInfo() []OperationInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return infoOf(s.entries[:s.position+1])
}

// RedoInfo returns the redo-pending commands in history order.
// The first element is the next one Redo would apply.
func (s *Stack) RedoInfo() []OperationInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return infoOf(s.entries[s.position+1:])
}

// PeekUndo returns info about the next undo operation without applying it.
func (s *Stack) PeekUndo() (OperationInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.position < 0 {
		return OperationInfo{}, false
	}
	return s.entries[s.position].info(), true
}

// PeekRedo returns info about the next redo operation without applying it.
func (s *Stack) PeekRedo() (OperationInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.position+1 >= len(s.entries) {
		return OperationInfo{}, false
	}
	return s.entries[s.position+1].info(), true
}

// MaxEntries returns the configured bound, or 0 if unbounded.
func (s *Stack) MaxEntries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxEntries
}

func (e *entry) info() OperationInfo {
	return OperationInfo{
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}
}

func infoOf(entries []*entry) []OperationInfo {
	result := make([]OperationInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info()
	}
	return result
}
