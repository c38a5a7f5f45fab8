package opengl

import (
	"github.com/blitzar-tech/graphview"
)

// bezierTolerance is the curve flattening tolerance in screen pixels.
const bezierTolerance = 0.25

// Painter implements graphview.Painter on top of a DrawList and the
// GL renderer. Call Begin before the widget updates and Flush after,
// once per frame.
type Painter struct {
	renderer *Renderer
	dl       *DrawList
}

// NewPainter creates a painter for a viewport of the given size. A
// current GL context is required.
func NewPainter(width, height int) (*Painter, error) {
	r, err := NewRenderer(width, height)
	if err != nil {
		return nil, err
	}
	return &Painter{renderer: r, dl: AcquireDrawList()}, nil
}

// Begin resets the frame's draw list and clips it to the canvas.
func (p *Painter) Begin(canvas graphview.Rect) {
	p.dl.Clear()
	p.dl.PushClipRect(canvas.X, canvas.Y, canvas.X+canvas.W, canvas.Y+canvas.H)
}

// Flush uploads and draws everything recorded since Begin.
func (p *Painter) Flush() error {
	return p.renderer.Render(p.dl)
}

// Resize updates the viewport size.
func (p *Painter) Resize(width, height int) {
	p.renderer.Resize(width, height)
}

// Delete releases the GL objects and recycles the draw list.
func (p *Painter) Delete() {
	p.renderer.Delete()
	if p.dl != nil {
		ReleaseDrawList(p.dl)
		p.dl = nil
	}
}

func (p *Painter) FillCircle(center graphview.Vec2, radius float32, color uint32) {
	p.dl.AddCircle(center.X, center.Y, radius, color)
}

func (p *Painter) StrokeCircle(center graphview.Vec2, radius, width float32, color uint32) {
	p.dl.AddCircleOutline(center.X, center.Y, radius, width, color)
}

func (p *Painter) Line(a, b graphview.Vec2, width float32, color uint32) {
	p.dl.AddLine(a.X, a.Y, b.X, b.Y, color, width)
}

func (p *Painter) FillTriangle(a, b, c graphview.Vec2, color uint32) {
	p.dl.AddTriangle(a.X, a.Y, b.X, b.Y, c.X, c.Y, color)
}

func (p *Painter) QuadBezier(a, control, b graphview.Vec2, width float32, color uint32) {
	p.polyline(graphview.FlattenQuadBezier(a, control, b, bezierTolerance), width, color)
}

func (p *Painter) CubicBezier(a, control1, control2, b graphview.Vec2, width float32, color uint32) {
	p.polyline(graphview.FlattenCubicBezier(a, control1, control2, b, bezierTolerance), width, color)
}

func (p *Painter) polyline(pts []graphview.Vec2, width float32, color uint32) {
	for i := 1; i < len(pts); i++ {
		p.dl.AddLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, color, width)
	}
}

// Text draws s centered on pos with the built-in 8px bitmap font.
func (p *Painter) Text(pos graphview.Vec2, size float32, s string, color uint32) {
	if s == "" || size <= 0 {
		return
	}
	scale := size / 8
	width := float32(len(s)) * 8 * scale
	p.dl.SetTexture(p.renderer.FontTextureID())
	p.dl.AddText(pos.X-width/2, pos.Y-size/2, s, color, scale)
	p.dl.SetTexture(0)
}
