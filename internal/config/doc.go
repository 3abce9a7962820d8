// Package config loads sketchpad settings from TOML.
//
// Settings start from Default and are overlaid by a TOML file:
//
//	[canvas]
//	width = 640
//	height = 480
//	background = "white"
//
//	[history]
//	max_entries = 0   # 0 keeps every command
//
//	[log]
//	level = "info"    # debug, info, warn, error
//
// A missing file is not an error; Load returns the defaults. Unknown keys
// are rejected so typos surface early.
package config
