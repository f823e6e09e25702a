// Package turtle implements the drawing cursor.
package turtle

import "git.sr.ht/~mango/logo/canvas"

// Offsets from the heading for each direction of movement
const (
	offForward int32 = 0
	offRight   int32 = 90
	offBack    int32 = 180
	offLeft    int32 = 270
)

// DefaultColor is the palette index a new turtle draws with
const DefaultColor = 7

type Turtle struct {
	X, Y    float32
	Heading int32 // Degrees clockwise from up; never normalised
	Pen     bool  // Whether the pen is down
	Color   int32 // Palette index; validated only when moving

	surface canvas.Surface
}

// New returns a turtle in the centre of s, facing up with its pen raised.
func New(s canvas.Surface) *Turtle {
	w, h := s.Size()
	return &Turtle{
		X:       float32(w) / 2,
		Y:       float32(h) / 2,
		Color:   DefaultColor,
		surface: s,
	}
}

func (t *Turtle) Surface() canvas.Surface { return t.surface }

func (t *Turtle) PenUp()   { t.Pen = false }
func (t *Turtle) PenDown() { t.Pen = true }

func (t *Turtle) Forward(d float32) error { return t.move(d, offForward) }
func (t *Turtle) Back(d float32) error    { return t.move(d, offBack) }
func (t *Turtle) Left(d float32) error    { return t.move(d, offLeft) }
func (t *Turtle) Right(d float32) error   { return t.move(d, offRight) }

func (t *Turtle) SetColor(i int32)     { t.Color = i }
func (t *Turtle) Turn(deg int32)       { t.Heading += deg }
func (t *Turtle) SetHeading(deg int32) { t.Heading = deg }
func (t *Turtle) SetX(x float32)       { t.X = x }
func (t *Turtle) SetY(y float32)       { t.Y = y }

// move walks d units in the direction heading+off, drawing a line if the pen
// is down.  The position changes the same way whether or not it draws.
func (t *Turtle) move(d float32, off int32) error {
	c, err := canvas.ColorAt(t.Color)
	if err != nil {
		return err
	}

	var x, y float32
	if t.Pen {
		x, y, err = t.surface.DrawLine(t.X, t.Y, t.Heading+off, d, c)
		if err != nil {
			return err
		}
	} else {
		x, y = canvas.EndPoint(t.X, t.Y, t.Heading+off, d)
	}

	t.X, t.Y = x, y
	return nil
}
