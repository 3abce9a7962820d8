package history

// Status is the outcome of an Undo or Redo call.
type Status int

const (
	// Failed means the command returned an error and nothing moved.
	Failed Status = iota
	// Applied means a command was undone or redone.
	Applied
	// NothingToUndo means the cursor was already before the first command.
	NothingToUndo
	// NothingToRedo means the cursor was already at the last command.
	NothingToRedo
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case Failed:
		return "failed"
	case Applied:
		return "applied"
	case NothingToUndo:
		return "nothing to undo"
	case NothingToRedo:
		return "nothing to redo"
	default:
		return "unknown"
	}
}
