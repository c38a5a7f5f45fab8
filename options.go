package graphview

// Option configures a graph element at insertion time.
type Option func(*options)

// options holds element configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for element options.
// Built-in and custom options use the same system, so custom drawers
// can define their own keys and read them back at draw time.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptHeat = graphview.NewOptKey("heat", float32(0))
//
//	// Set options
//	g.AddNode(payload, graphview.WithOpt(OptHeat, 0.7))
//
//	// Read in a custom drawer
//	heat := graphview.NodeOpt(n, OptHeat)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to read custom option keys.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// NodeOpt returns the value a node was inserted with for key, or the
// key's default. Elements keep their insertion options, so custom keys
// survive for drawers and hosts to read back.
func NodeOpt[T any](n *Node, key OptKey[T]) T {
	return GetOpt(n.opts, key)
}

// EdgeOpt returns the value an edge was inserted with for key, or the
// key's default.
func EdgeOpt[T any](e *Edge, key OptKey[T]) T {
	return GetOpt(e.opts, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Node Options ---
var (
	OptLabel    = NewOptKey("label", "")
	OptLocation = NewOptKey("location", Vec2{})
	OptRadius   = NewOptKey("radius", DefaultNodeRadius)
	OptSelected = NewOptKey("selected", false)
	OptFolded   = NewOptKey("folded", false)
)

// --- Edge Options ---
var (
	OptEdgeWidth     = NewOptKey("edgeWidth", DefaultEdgeWidth)
	OptEdgeTipSize   = NewOptKey("edgeTipSize", DefaultEdgeTipSize)
	OptEdgeTipAngle  = NewOptKey("edgeTipAngle", DefaultEdgeTipAngle)
	OptEdgeCurveSize = NewOptKey("edgeCurveSize", DefaultEdgeCurveSize)
)

// WithLabel sets the element's display label.
func WithLabel(label string) Option {
	return WithOpt(OptLabel, label)
}

// WithLocation places a node at the given graph-space position.
func WithLocation(loc Vec2) Option {
	return WithOpt(OptLocation, loc)
}

// WithRadius overrides a node's base radius.
func WithRadius(r float32) Option {
	return WithOpt(OptRadius, r)
}

// WithSelected spawns the element already selected.
func WithSelected(selected bool) Option {
	return WithOpt(OptSelected, selected)
}

// WithFolded spawns the node already folded.
func WithFolded(folded bool) Option {
	return WithOpt(OptFolded, folded)
}

// WithEdgeWidth sets the edge stroke width.
func WithEdgeWidth(w float32) Option {
	return WithOpt(OptEdgeWidth, w)
}

// WithEdgeTipSize sets the arrowhead length for directed edges.
func WithEdgeTipSize(s float32) Option {
	return WithOpt(OptEdgeTipSize, s)
}

// WithEdgeTipAngle sets the arrowhead half-angle in radians.
func WithEdgeTipAngle(a float32) Option {
	return WithOpt(OptEdgeTipAngle, a)
}

// WithEdgeCurveSize sets how far parallel edges bow away from the
// straight line between their endpoints.
func WithEdgeCurveSize(c float32) Option {
	return WithOpt(OptEdgeCurveSize, c)
}
