// Package canvas holds the drawable collection a sketch document edits.
//
// A Drawables value is an ordered, mutable list of Drawable shapes. It is
// shared by pointer between a document and every history command bound to
// it; commands mutate it in place and never replace it.
//
// # Identity
//
// Every shape carries a UUID assigned when it is constructed. Remove matches
// on that identity, never on field equality, so two rectangles with the same
// geometry and color are still distinct entries:
//
//	a := canvas.NewRect(0, 0, 10, 10, red)
//	b := canvas.NewRect(0, 0, 10, 10, red)
//	ds.Append(a, b)
//	ds.Remove(b) // a stays
//
// # Rendering
//
// Render paints the shapes in list order onto an RGBA image using the
// golang.org/x/image/vector rasterizer. Later entries paint over earlier ones.
package canvas
