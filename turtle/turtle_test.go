package turtle

import (
	"errors"
	"testing"

	"git.sr.ht/~mango/logo/canvas"
)

func assertPos(t *testing.T, tu *Turtle, x, y float32) {
	if tu.X != x || tu.Y != y {
		t.Fatalf("Expected turtle at (%g, %g) but got (%g, %g)", x, y, tu.X, tu.Y)
	}
}

func TestNew(t *testing.T) {
	tu := New(canvas.New(200, 100))
	assertPos(t, tu, 100, 50)
	if tu.Heading != 0 || tu.Pen || tu.Color != DefaultColor {
		t.Fatalf("Unexpected initial state %+v", *tu)
	}
}

func TestMove(t *testing.T) {
	img := canvas.New(200, 200)
	tu := New(img)
	tu.PenDown()

	steps := []func() error{
		func() error { return tu.Forward(10) },
		func() error { return tu.Back(20) },
		func() error { return tu.Left(10) },
		func() error { return tu.Right(20) },
	}
	for _, f := range steps {
		if err := f(); err != nil {
			t.Fatal(err)
		}
	}
	tu.Turn(90)

	assertPos(t, tu, 110, 110)
	if tu.Heading != 90 || !tu.Pen {
		t.Fatalf("Expected heading 90 with the pen down but got %+v", *tu)
	}
	if n := len(img.Lines()); n != 4 {
		t.Fatalf("Expected 4 lines but got %d", n)
	}
}

func TestPenUpDoesNotDraw(t *testing.T) {
	img := canvas.New(200, 200)
	tu := New(img)

	if err := tu.Forward(30); err != nil {
		t.Fatal(err)
	}
	assertPos(t, tu, 100, 70)
	if n := len(img.Lines()); n != 0 {
		t.Fatalf("Expected no lines but got %d", n)
	}
}

func TestSet(t *testing.T) {
	tu := New(canvas.New(200, 200))
	tu.SetHeading(10)
	tu.Turn(-30)
	tu.SetX(90)
	tu.SetY(-5)
	tu.SetColor(2)

	assertPos(t, tu, 90, -5)
	if tu.Heading != -20 || tu.Color != 2 {
		t.Fatalf("Unexpected state %+v", *tu)
	}
}

func TestBadColorOnMove(t *testing.T) {
	tu := New(canvas.New(200, 200))
	tu.SetColor(16)
	if err := tu.Forward(1); !errors.Is(err, canvas.ErrBadColor) {
		t.Fatalf("Expected ErrBadColor but got ‘%v’", err)
	}
	assertPos(t, tu, 100, 100)
}
