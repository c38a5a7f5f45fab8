package graphview

import (
	"log/slog"
	"os"
)

// logLevel gates the package logger. Hosts raise it to debug the
// widget's frame handling.
var logLevel = new(slog.LevelVar)

// logger reports dropped interactions and frame anomalies without
// forcing the host to thread errors through every handler.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetLogger replaces the package logger.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// SetLogLevel adjusts the default logger's verbosity.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// Context bundles the per-frame collaborators a GraphView reads and
// writes: input, the state store, the paint target and the canvas the
// widget occupies. This is NOT context.Context - it is a dedicated
// widget context, passed explicitly so the host controls every
// dependency.
type Context struct {
	// Input, reset and fed by the host each frame before widgets
	// update.
	Input *InputState

	// Store persists widget metadata between frames.
	Store StateStore

	// Painter receives draw calls. A nil Painter skips drawing, which
	// headless hosts and tests rely on.
	Painter Painter

	// Canvas is the screen rectangle the widget occupies.
	Canvas Rect

	// FrameCount increments once per Begin.
	FrameCount uint64

	// DeltaTime is the seconds elapsed since the previous frame.
	DeltaTime float32
}

// NewContext creates a context with fresh input state and an in-memory
// store.
func NewContext() *Context {
	return &Context{
		Input: NewInputState(),
		Store: make(MapStateStore),
	}
}

// Begin opens a frame: it sets the canvas and advances the frame
// counter. Input must already be reset and fed for this frame.
func (ctx *Context) Begin(canvas Rect, dt float32) {
	ctx.Canvas = canvas
	ctx.DeltaTime = dt
	ctx.FrameCount++
}
