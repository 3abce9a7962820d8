// Package history provides undo/redo for a sketch document.
//
// The history system uses the Command pattern: every user action that
// changes the drawable collection is wrapped in a Command that knows how to
// apply and reverse itself.
//
// # Commands
//
// Built-in commands operate on a shared *canvas.Drawables:
//   - AddDrawableCommand: append one drawable; undo removes it by identity
//   - ClearCommand: empty the collection; undo appends the snapshot taken
//     when the command was created
//
// # Stack
//
// Stack is a linear history with a cursor pointing at the last applied
// command. Commands after the cursor are redo-pending; executing a new
// command discards them.
//
//	stack := history.NewStack()
//
//	stack.Execute(history.NewAddDrawableCommand(drawables, rect))
//
//	status, err := stack.Undo() // history.Applied
//	status, err = stack.Undo()  // history.NothingToUndo
//	status, err = stack.Redo()  // history.Applied
//
// Undo and Redo report an empty direction through Status rather than an
// error, so callers can disable controls without inspecting logs.
//
// Each Stack owns its own lock. Independent documents each hold their own
// Stack and never contend.
package history
