// Package raster renders graphview frames into an in-memory image
// using fogleman/gg. No window or GPU is needed, which suits headless
// hosts: snapshot tests, thumbnails, server-side previews.
package raster

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/blitzar-tech/graphview"
)

// Painter implements graphview.Painter on a gg drawing context. Labels
// use the Go Regular typeface with one cached face per requested size.
type Painter struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float32]font.Face
}

// NewPainter creates a painter backed by a width x height RGBA image.
func NewPainter(width, height int) (*Painter, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Painter{
		dc:    gg.NewContext(width, height),
		font:  f,
		faces: make(map[float32]font.Face),
	}, nil
}

// Clear fills the whole image with the given color.
func (p *Painter) Clear(color uint32) {
	p.setColor(color)
	p.dc.Clear()
}

// Image returns the backing image. It stays valid until the next draw.
func (p *Painter) Image() image.Image {
	return p.dc.Image()
}

// SavePNG writes the current image to a PNG file.
func (p *Painter) SavePNG(path string) error {
	return p.dc.SavePNG(path)
}

func (p *Painter) FillCircle(center graphview.Vec2, radius float32, color uint32) {
	p.setColor(color)
	p.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	p.dc.Fill()
}

func (p *Painter) StrokeCircle(center graphview.Vec2, radius, width float32, color uint32) {
	p.setColor(color)
	p.dc.SetLineWidth(float64(width))
	p.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	p.dc.Stroke()
}

func (p *Painter) Line(a, b graphview.Vec2, width float32, color uint32) {
	p.setColor(color)
	p.dc.SetLineWidth(float64(width))
	p.dc.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
	p.dc.Stroke()
}

func (p *Painter) FillTriangle(a, b, c graphview.Vec2, color uint32) {
	p.setColor(color)
	p.dc.MoveTo(float64(a.X), float64(a.Y))
	p.dc.LineTo(float64(b.X), float64(b.Y))
	p.dc.LineTo(float64(c.X), float64(c.Y))
	p.dc.ClosePath()
	p.dc.Fill()
}

func (p *Painter) QuadBezier(a, control, b graphview.Vec2, width float32, color uint32) {
	p.setColor(color)
	p.dc.SetLineWidth(float64(width))
	p.dc.MoveTo(float64(a.X), float64(a.Y))
	p.dc.QuadraticTo(float64(control.X), float64(control.Y), float64(b.X), float64(b.Y))
	p.dc.Stroke()
}

func (p *Painter) CubicBezier(a, control1, control2, b graphview.Vec2, width float32, color uint32) {
	p.setColor(color)
	p.dc.SetLineWidth(float64(width))
	p.dc.MoveTo(float64(a.X), float64(a.Y))
	p.dc.CubicTo(float64(control1.X), float64(control1.Y),
		float64(control2.X), float64(control2.Y), float64(b.X), float64(b.Y))
	p.dc.Stroke()
}

// Text draws s centered on pos.
func (p *Painter) Text(pos graphview.Vec2, size float32, s string, color uint32) {
	if s == "" || size <= 0 {
		return
	}
	p.setColor(color)
	p.dc.SetFontFace(p.face(size))
	p.dc.DrawStringAnchored(s, float64(pos.X), float64(pos.Y), 0.5, 0.5)
}

func (p *Painter) face(size float32) font.Face {
	if f, ok := p.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(p.font, &truetype.Options{Size: float64(size)})
	p.faces[size] = f
	return f
}

func (p *Painter) setColor(c uint32) {
	r, g, b, a := graphview.UnpackRGBA(c)
	p.dc.SetRGBA255(int(r), int(g), int(b), int(a))
}
