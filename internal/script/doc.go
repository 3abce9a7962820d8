// Package script drives a sketch document from a file of actions.
//
// Two formats are supported. YAML scripts list one action per step:
//
//	steps:
//	  - add: {shape: rect, x: 10, y: 10, w: 40, h: 20, color: red}
//	  - add: {shape: line, x: 0, y: 0, x2: 100, y2: 100, width: 2}
//	  - clear: true
//	  - undo: 1
//	  - redo: 1
//	  - reset: true
//
// Lua scripts call global functions instead:
//
//	rect(10, 10, 40, 20, "red")
//	ellipse(60, 60, 30, 30, "#00ff00")
//	line(0, 0, 100, 100, 2, "navy")
//	clear()
//	if can_undo() then undo() end
//	reset()
//
// Lua runs with only the base, table, string and math libraries.
package script
