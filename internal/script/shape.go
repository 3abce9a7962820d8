package script

import (
	"fmt"
	"strings"

	"github.com/dshills/sketchpad/internal/canvas"
)

// ShapeSpec describes a drawable in script form.
// Lines use (X, Y) as the start point and (X2, Y2) as the end point.
type ShapeSpec struct {
	Shape string  `yaml:"shape"`
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
	W     float32 `yaml:"w"`
	H     float32 `yaml:"h"`
	X2    float32 `yaml:"x2"`
	Y2    float32 `yaml:"y2"`
	Width float32 `yaml:"width"`
	Color string  `yaml:"color"`
}

// Build creates the drawable. An empty color means canvas.DefaultColor.
func (s ShapeSpec) Build() (canvas.Drawable, error) {
	c := canvas.DefaultColor
	if s.Color != "" {
		var err error
		if c, err = canvas.ParseColor(s.Color); err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(s.Shape) {
	case "rect", "rectangle":
		return canvas.NewRect(s.X, s.Y, s.W, s.H, c), nil
	case "ellipse", "circle":
		return canvas.NewEllipse(s.X, s.Y, s.W, s.H, c), nil
	case "line":
		return canvas.NewLine(s.X, s.Y, s.X2, s.Y2, s.Width, c), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Shape)
	}
}
