package script

import (
	"context"
	"io"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/sketchpad/internal/history"
)

// RunLua runs a Lua script with the drawing API installed as globals.
// The script stops when ctx is cancelled.
func (r *Runner) RunLua(ctx context.Context, name string, rd io.Reader) error {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // We'll open selectively
	})
	defer L.Close()

	openSafeLibraries(L)
	L.SetContext(ctx)
	r.install(L)

	fn, err := L.Load(rd, name)
	if err != nil {
		return &ScriptError{Name: name, Err: err}
	}

	r.logger.Debug("running lua script", "script", name)
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return &ScriptError{Name: name, Err: err}
	}
	return nil
}

// openSafeLibraries opens only libraries without file or process access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Base opens these; they can read files or compile arbitrary chunks.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// install registers the drawing API.
func (r *Runner) install(L *lua.LState) {
	funcs := map[string]lua.LGFunction{
		"rect":     r.luaBox("rect"),
		"ellipse":  r.luaBox("ellipse"),
		"line":     r.luaLine,
		"clear":    r.luaClear,
		"undo":     r.luaUndo,
		"redo":     r.luaRedo,
		"reset":    r.luaReset,
		"count":    r.luaCount,
		"can_undo": r.luaCanUndo,
		"can_redo": r.luaCanRedo,
	}
	for name, fn := range funcs {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

// luaBox returns rect(x, y, w, h [, color]) or ellipse(...).
func (r *Runner) luaBox(kind string) lua.LGFunction {
	return func(L *lua.LState) int {
		spec := ShapeSpec{
			Shape: kind,
			X:     float32(L.CheckNumber(1)),
			Y:     float32(L.CheckNumber(2)),
			W:     float32(L.CheckNumber(3)),
			H:     float32(L.CheckNumber(4)),
			Color: L.OptString(5, ""),
		}
		r.add(L, spec)
		return 0
	}
}

// luaLine implements line(x1, y1, x2, y2 [, width [, color]]).
func (r *Runner) luaLine(L *lua.LState) int {
	spec := ShapeSpec{
		Shape: "line",
		X:     float32(L.CheckNumber(1)),
		Y:     float32(L.CheckNumber(2)),
		X2:    float32(L.CheckNumber(3)),
		Y2:    float32(L.CheckNumber(4)),
		Width: float32(L.OptNumber(5, 1)),
		Color: L.OptString(6, ""),
	}
	r.add(L, spec)
	return 0
}

func (r *Runner) add(L *lua.LState, spec ShapeSpec) {
	d, err := spec.Build()
	if err != nil {
		L.RaiseError("%s: %v", spec.Shape, err)
		return
	}
	if err := r.target.AddDrawable(d); err != nil {
		L.RaiseError("%s: %v", spec.Shape, err)
	}
}

func (r *Runner) luaClear(L *lua.LState) int {
	if err := r.target.Clear(); err != nil {
		L.RaiseError("clear: %v", err)
	}
	return 0
}

// luaUndo returns true when an action was undone.
func (r *Runner) luaUndo(L *lua.LState) int {
	status, err := r.target.Undo()
	if err != nil {
		L.RaiseError("undo: %v", err)
		return 0
	}
	L.Push(lua.LBool(status == history.Applied))
	return 1
}

// luaRedo returns true when an action was redone.
func (r *Runner) luaRedo(L *lua.LState) int {
	status, err := r.target.Redo()
	if err != nil {
		L.RaiseError("redo: %v", err)
		return 0
	}
	L.Push(lua.LBool(status == history.Applied))
	return 1
}

func (r *Runner) luaReset(L *lua.LState) int {
	r.target.ResetHistory()
	return 0
}

func (r *Runner) luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(r.target.Len()))
	return 1
}

func (r *Runner) luaCanUndo(L *lua.LState) int {
	L.Push(lua.LBool(r.target.CanUndo()))
	return 1
}

func (r *Runner) luaCanRedo(L *lua.LState) int {
	L.Push(lua.LBool(r.target.CanRedo()))
	return 1
}
