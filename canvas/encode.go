package canvas

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/fogleman/gg"
)

type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

// Background is the colour an image is filled with before drawing
var Background = Palette[0]

const lineWidth = 1

var ErrFormat = errors.New("file extension not supported")

// FormatOf picks the output format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrFormat)
}

func (img *Image) EncodePNG(w io.Writer) error {
	dc := gg.NewContext(img.w, img.h)
	dc.SetRGB255(int(Background.R), int(Background.G), int(Background.B))
	dc.Clear()

	dc.SetLineWidth(lineWidth)
	for _, l := range img.lines {
		dc.SetRGB255(int(l.Color.R), int(l.Color.G), int(l.Color.B))
		dc.DrawLine(float64(l.X1), float64(l.Y1), float64(l.X2), float64(l.Y2))
		dc.Stroke()
	}

	return dc.EncodePNG(w)
}

// errWriter remembers the first write error since svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func (img *Image) EncodeSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Decimals = 4

	s.Start(float64(img.w), float64(img.h))
	s.Rect(0, 0, float64(img.w), float64(img.h), "fill:"+rgb(Background))
	for _, l := range img.lines {
		s.Line(float64(l.X1), float64(l.Y1), float64(l.X2), float64(l.Y2),
			fmt.Sprintf("stroke:%s;stroke-width:%d", rgb(l.Color), lineWidth))
	}
	s.End()

	return ew.err
}

func rgb(c Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Save writes the image to path in the format its extension names.
func (img *Image) Save(path string) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case FormatSVG:
		err = img.EncodeSVG(f)
	default:
		err = img.EncodePNG(f)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
