package canvas

import "math"

// Line is a recorded segment
type Line struct {
	X1, Y1, X2, Y2 float32
	Color          Color
}

// Image is an in-memory Surface.  Lines outside its bounds are kept and
// clipped when rendered.
type Image struct {
	w, h  int
	lines []Line
}

func New(w, h int) *Image {
	return &Image{w: w, h: h}
}

func (img *Image) Size() (int, int) {
	return img.w, img.h
}

func (img *Image) Lines() []Line {
	return img.lines
}

func (img *Image) DrawLine(x, y float32, heading int32, length float32, c Color) (float32, float32, error) {
	ex, ey := EndPoint(x, y, heading, length)
	if !finite(ex) || !finite(ey) {
		return x, y, errNotFinite
	}
	img.lines = append(img.lines, Line{x, y, ex, ey, c})
	return ex, ey, nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
