// Package canvas is the surface the turtle draws on.  It records line
// segments and renders them as PNG or SVG.
package canvas

import (
	"errors"
	"fmt"
	"math"
)

// Surface accepts lines drawn from a point along a heading.
type Surface interface {
	Size() (w, h int)

	// DrawLine draws a line of the given length from (x, y) along heading
	// and returns where it ends.
	DrawLine(x, y float32, heading int32, length float32, c Color) (float32, float32, error)
}

type Color struct {
	R, G, B uint8
}

// Palette holds the colours selectable by index
var Palette = [...]Color{
	{0, 0, 0},       // black
	{0, 0, 255},     // blue
	{0, 255, 255},   // cyan
	{0, 255, 0},     // lime
	{255, 0, 0},     // red
	{255, 0, 255},   // magenta
	{255, 255, 0},   // yellow
	{255, 255, 255}, // white
	{165, 42, 42},   // brown
	{210, 180, 140}, // tan
	{0, 128, 0},     // green
	{127, 255, 212}, // aquamarine
	{250, 128, 114}, // salmon
	{128, 0, 128},   // purple
	{255, 165, 0},   // orange
	{128, 128, 128}, // grey
}

// ErrBadColor is wrapped by ColorAt for indices outside the palette.
var ErrBadColor = errors.New("invalid colour")

var errNotFinite = errors.New("line end point is not a finite number")

func ColorAt(i int32) (Color, error) {
	if i < 0 || int(i) >= len(Palette) {
		return Color{}, fmt.Errorf("%w %d: must be between 0 and %d",
			ErrBadColor, i, len(Palette)-1)
	}
	return Palette[i], nil
}

// EndPoint returns the point length units away from (x, y) along heading.
// A heading of 0 points up and headings grow clockwise, in degrees.  The
// result is rounded to four decimal places.
func EndPoint(x, y float32, heading int32, length float32) (float32, float32) {
	rad := float64(heading) * math.Pi / 180
	l := float64(length)
	ex := float64(x) + l*math.Sin(rad)
	ey := float64(y) - l*math.Cos(rad)
	return float32(round4(ex)), float32(round4(ey))
}

func round4(f float64) float64 {
	return math.Round(f*1e4) / 1e4
}
