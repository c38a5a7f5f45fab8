package graphview

// Metadata is the widget's durable cross-frame state: the camera plus
// the last frame's bounding box. It lives in the host's StateStore
// keyed by the widget identity, so several views can share one store
// without colliding.
type Metadata struct {
	// Zoom scales graph space to screen space.
	Zoom float32

	// Pan offsets the scaled graph within the canvas, in screen units
	// relative to the canvas origin.
	Pan Vec2

	// FirstFrame triggers the initial fit-to-screen.
	FirstFrame bool

	// Bounds is the last frame's graph bounding box.
	Bounds Bounds
}

// NewMetadata returns the camera defaults: identity zoom, no pan, fit
// pending.
func NewMetadata() Metadata {
	return Metadata{Zoom: 1, FirstFrame: true, Bounds: NewBounds()}
}

// LoadMetadata fetches the widget state stored under id, or defaults.
func LoadMetadata(store StateStore, id ID) Metadata {
	return GetState(store, id, NewMetadata())
}

// Save persists the metadata under id.
func (m Metadata) Save(store StateStore, id ID) {
	SetState(store, id, m)
}

// ResetMetadata drops the stored camera so the next frame starts from
// defaults and re-fits. Hosts call this after regenerating the graph.
func ResetMetadata(store StateStore, id ID) {
	DeleteState(store, id)
}

// ScreenToGraph converts an absolute screen position to graph space.
func (m *Metadata) ScreenToGraph(canvas Rect, p Vec2) Vec2 {
	return p.Sub(canvas.Origin()).Sub(m.Pan).Div(m.Zoom)
}

// GraphToScreen converts a graph-space position to the screen.
func (m *Metadata) GraphToScreen(canvas Rect, p Vec2) Vec2 {
	return p.Mul(m.Zoom).Add(m.Pan).Add(canvas.Origin())
}

// ApplyZoom multiplies the zoom by (1+delta) while keeping the graph
// point under the screen-space anchor fixed in place, so zooming feels
// pinned to the pointer.
func (m *Metadata) ApplyZoom(canvas Rect, delta float32, anchor Vec2) {
	center := anchor.Sub(canvas.Origin())
	graphCenter := center.Sub(m.Pan).Div(m.Zoom)

	newZoom := m.Zoom * (1 + delta)
	m.Pan = m.Pan.Add(graphCenter.Mul(m.Zoom - newZoom))
	m.Zoom = newZoom
}

// FitToScreen zooms and pans so bounds, padded by the given fraction on
// both axes, fills the canvas centered. Fitting twice with the same
// bounds is a no-op the second time: the target zoom is absolute, not
// incremental.
func (m *Metadata) FitToScreen(canvas Rect, bounds Bounds, padding float32) {
	size := bounds.Size().Mul(1 + padding)
	newZoom := minf(canvas.W/size.X, canvas.H/size.Y)

	m.ApplyZoom(canvas, newZoom/m.Zoom-1, canvas.Center())
	m.Pan = Vec2{X: canvas.W / 2, Y: canvas.H / 2}.Sub(bounds.Center().Mul(newZoom))
}
