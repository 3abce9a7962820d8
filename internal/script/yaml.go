package script

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is a parsed YAML script.
type Document struct {
	Steps []Step `yaml:"steps"`
}

// Step is one action. Exactly one field must be set.
type Step struct {
	Add   *ShapeSpec `yaml:"add"`
	Clear bool       `yaml:"clear"`
	Undo  int        `yaml:"undo"`
	Redo  int        `yaml:"redo"`
	Reset bool       `yaml:"reset"`
}

// op returns the action the step names, or an error if it names zero or
// several.
func (s Step) op() (string, error) {
	var ops []string
	if s.Add != nil {
		ops = append(ops, "add")
	}
	if s.Clear {
		ops = append(ops, "clear")
	}
	if s.Undo > 0 {
		ops = append(ops, "undo")
	}
	if s.Redo > 0 {
		ops = append(ops, "redo")
	}
	if s.Reset {
		ops = append(ops, "reset")
	}
	if len(ops) != 1 {
		return "", fmt.Errorf("%w, got %v", ErrInvalidStep, ops)
	}
	return ops[0], nil
}

// ParseYAML decodes a YAML script. Unknown keys are rejected.
func ParseYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil // Empty script
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	for i, step := range doc.Steps {
		if _, err := step.op(); err != nil {
			return nil, &StepError{Index: i, Err: err}
		}
	}
	return &doc, nil
}

// RunYAML parses and runs a YAML script. Steps run in order; the first
// failing step stops the script. Context cancellation is checked between
// steps.
func (r *Runner) RunYAML(ctx context.Context, name string, rd io.Reader) error {
	doc, err := ParseYAML(rd)
	if err != nil {
		return &ScriptError{Name: name, Err: err}
	}

	r.logger.Debug("running yaml script", "script", name, "steps", len(doc.Steps))
	for i, step := range doc.Steps {
		if err := ctx.Err(); err != nil {
			return &ScriptError{Name: name, Err: err}
		}
		if err := r.runStep(step); err != nil {
			return &ScriptError{Name: name, Err: &StepError{Index: i, Op: mustOp(step), Err: err}}
		}
	}
	return nil
}

func (r *Runner) runStep(step Step) error {
	switch mustOp(step) {
	case "add":
		d, err := step.Add.Build()
		if err != nil {
			return err
		}
		return r.target.AddDrawable(d)
	case "clear":
		return r.target.Clear()
	case "undo":
		_, err := r.undoN(step.Undo)
		return err
	case "redo":
		_, err := r.redoN(step.Redo)
		return err
	case "reset":
		r.target.ResetHistory()
		return nil
	}
	return nil
}

// mustOp returns the step's action. Steps are validated by ParseYAML.
func mustOp(step Step) string {
	op, _ := step.op()
	return op
}
