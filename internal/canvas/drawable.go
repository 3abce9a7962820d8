package canvas

import (
	"fmt"
	"image/color"
	"math"

	"github.com/google/uuid"
)

// Pather receives the outline of a shape.
// *vector.Rasterizer satisfies it.
type Pather interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}

// Drawable is a renderable item on the canvas.
type Drawable interface {
	// ID returns the identity used for removal.
	ID() uuid.UUID

	// Kind returns a short shape name such as "rect".
	Kind() string

	// Color returns the fill color.
	Color() color.RGBA

	// Trace emits the shape outline as a closed path.
	Trace(p Pather)
}

// shape holds the fields common to every built-in drawable.
type shape struct {
	id    uuid.UUID
	color color.RGBA
}

func newShape(c color.RGBA) shape {
	return shape{id: uuid.New(), color: c}
}

// ID returns the shape's identity.
func (s *shape) ID() uuid.UUID { return s.id }

// Color returns the fill color.
func (s *shape) Color() color.RGBA { return s.color }

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	shape
	X, Y, W, H float32
}

// NewRect creates a rectangle with its top-left corner at (x, y).
func NewRect(x, y, w, h float32, c color.RGBA) *Rect {
	return &Rect{shape: newShape(c), X: x, Y: y, W: w, H: h}
}

// Kind returns "rect".
func (r *Rect) Kind() string { return "rect" }

// Trace emits the rectangle outline.
func (r *Rect) Trace(p Pather) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.X+r.W, r.Y)
	p.LineTo(r.X+r.W, r.Y+r.H)
	p.LineTo(r.X, r.Y+r.H)
	p.ClosePath()
}

func (r *Rect) String() string {
	return fmt.Sprintf("rect(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// kappa is the control point distance for a quarter circle cubic.
const kappa = 0.5522847498

// Ellipse is a filled ellipse inscribed in the box (X, Y, W, H).
type Ellipse struct {
	shape
	X, Y, W, H float32
}

// NewEllipse creates an ellipse inscribed in the given bounding box.
func NewEllipse(x, y, w, h float32, c color.RGBA) *Ellipse {
	return &Ellipse{shape: newShape(c), X: x, Y: y, W: w, H: h}
}

// Kind returns "ellipse".
func (e *Ellipse) Kind() string { return "ellipse" }

// Trace emits the ellipse as four cubic segments.
func (e *Ellipse) Trace(p Pather) {
	rx, ry := e.W/2, e.H/2
	cx, cy := e.X+rx, e.Y+ry
	kx, ky := kappa*rx, kappa*ry

	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.ClosePath()
}

func (e *Ellipse) String() string {
	return fmt.Sprintf("ellipse(%g,%g %gx%g)", e.X, e.Y, e.W, e.H)
}

// Line is a straight stroke from (X1, Y1) to (X2, Y2).
type Line struct {
	shape
	X1, Y1, X2, Y2 float32
	Width          float32
}

// NewLine creates a line segment. A non-positive width is treated as 1.
func NewLine(x1, y1, x2, y2, width float32, c color.RGBA) *Line {
	if width <= 0 {
		width = 1
	}
	return &Line{shape: newShape(c), X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width}
}

// Kind returns "line".
func (l *Line) Kind() string { return "line" }

// Trace emits the stroke as a quad offset by half the width on each side.
// A zero-length line emits nothing.
func (l *Line) Trace(p Pather) {
	dx, dy := float64(l.X2-l.X1), float64(l.Y2-l.Y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	hw := float64(l.Width) / 2
	nx := float32(-dy / length * hw)
	ny := float32(dx / length * hw)

	p.MoveTo(l.X1+nx, l.Y1+ny)
	p.LineTo(l.X2+nx, l.Y2+ny)
	p.LineTo(l.X2-nx, l.Y2-ny)
	p.LineTo(l.X1-nx, l.Y1-ny)
	p.ClosePath()
}

func (l *Line) String() string {
	return fmt.Sprintf("line(%g,%g -> %g,%g)", l.X1, l.Y1, l.X2, l.Y2)
}
