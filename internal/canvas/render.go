package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Render paints the drawables in order onto a new width x height image
// filled with bg.
func Render(ds *Drawables, width, height int, bg color.Color) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if bg != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	if ds == nil {
		return dst, nil
	}

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Over
	for _, d := range ds.All() {
		z.Reset(width, height)
		d.Trace(z)
		z.Draw(dst, dst.Bounds(), image.NewUniform(d.Color()), image.Point{})
	}

	return dst, nil
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
