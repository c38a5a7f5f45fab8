// Example renders a random multigraph in a GLFW window: drag nodes,
// drag empty space to pan, scroll to zoom, click to select and
// double-click to fold a subtree. With -png it renders one frame
// headlessly instead.
//
// Prerequisites for the windowed mode:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The headless mode needs neither a display nor GL:
//
//	go run ./example/ -png out.png
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/blitzar-tech/graphview"
	"github.com/blitzar-tech/graphview/backend/opengl"
	"github.com/blitzar-tech/graphview/backend/raster"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "graphview example"
)

var (
	nodeCount = flag.Int("nodes", 12, "number of generated nodes")
	edgeCount = flag.Int("edges", 18, "number of generated edges")
	seed      = flag.Int64("seed", 42, "seed for the generated graph")
	pngPath   = flag.String("png", "", "render one frame to this PNG instead of opening a window")
	layout    = flag.Bool("layout", true, "run the toy force layout each frame")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	g := generateGraph(*nodeCount, *edgeCount, *seed)

	view := graphview.New(g,
		graphview.WithInteraction(graphview.NewSettingsInteraction().
			WithDragging(true).
			WithClicking(true).
			WithSelection(true).
			WithFolding(true)),
		graphview.WithNavigation(graphview.NewSettingsNavigation().
			WithFitToScreen(false).
			WithZoomAndPan(true)),
		graphview.WithStyle(graphview.NewSettingsStyle().
			WithLabelsAlways(true)),
	)

	if *pngPath != "" {
		return renderPNG(view, *pngPath)
	}
	return runWindow(view)
}

// renderPNG drives a single frame with no input and writes the result.
// The first frame always fits the graph to the canvas, so the whole
// graph lands in the image.
func renderPNG(view *graphview.GraphView, path string) error {
	painter, err := raster.NewPainter(windowWidth, windowHeight)
	if err != nil {
		return err
	}

	ctx := graphview.NewContext()
	ctx.Painter = painter
	canvas := graphview.Rect{W: windowWidth, H: windowHeight}

	ctx.Input.Reset()
	ctx.Input.Tick(1.0 / 60.0)
	ctx.Begin(canvas, 1.0/60.0)

	painter.Clear(graphview.DarkPalette{}.CanvasColor())
	if _, err := view.Update(ctx, "example"); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	return painter.SavePNG(path)
}

func runWindow(view *graphview.GraphView) error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	painter, err := opengl.NewPainter(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("painter: %w", err)
	}
	defer painter.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ctx := graphview.NewContext()
	ctx.Input = inputAdapter.Input()
	ctx.Painter = painter

	bg := graphview.DarkPalette{}.CanvasColor()
	br, bgr, bb, _ := graphview.UnpackRGBA(bg)

	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		// Reset input before polling so this frame's events land on
		// fresh state.
		inputAdapter.Update(dt)
		glfw.PollEvents()

		if *layout {
			layoutStep(view.Graph())
		}

		w, h := window.GetFramebufferSize()
		painter.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(float32(br)/255, float32(bgr)/255, float32(bb)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		canvas := graphview.Rect{W: float32(w), H: float32(h)}
		ctx.Begin(canvas, dt)
		painter.Begin(canvas)

		changes, err := view.Update(ctx, "example")
		if err != nil {
			fmt.Fprintln(os.Stderr, "frame:", err)
		}
		for _, c := range changes {
			// Subgraph aggregates repeat every frame and drags move
			// every frame; print only the discrete events.
			if c.SubGraph != nil || (c.Node != nil && c.Node.Kind == graphview.NodeMoved) {
				continue
			}
			fmt.Println(c)
		}

		if err := painter.Flush(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// generateGraph builds a random directed multigraph. A chain keeps it
// connected; the rest of the edges land on random pairs, so parallel
// edges and the odd self-loop show up with enough of them.
func generateGraph(nodes, edges int, seed int64) *graphview.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := graphview.NewGraph(true)

	ids := make([]int64, 0, nodes)
	for i := 0; i < nodes; i++ {
		loc := graphview.Vec2{
			X: rng.Float32() * 400,
			Y: rng.Float32() * 400,
		}
		id := g.AddNode(nil,
			graphview.WithLabel(fmt.Sprintf("n%d", i)),
			graphview.WithLocation(loc))
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return g
	}

	remaining := edges
	for i := 1; i < len(ids) && remaining > 0; i++ {
		g.AddEdge(ids[i-1], ids[i], nil)
		remaining--
	}
	for ; remaining > 0; remaining-- {
		from := ids[rng.Intn(len(ids))]
		to := ids[rng.Intn(len(ids))]
		g.AddEdge(from, to, nil)
	}

	return g
}

// layoutStep nudges every node once: connected nodes pull together,
// all pairs push apart. Layout is the host's job, the widget only
// renders locations, and this toy embedder keeps the demo moving.
// Dragged nodes are left alone so the layout does not fight the
// pointer.
func layoutStep(g *graphview.Graph) {
	const (
		repulsion = 6000.0
		spring    = 0.02
		restLen   = 60.0
		maxStep   = 2.0
	)

	nodes := g.Nodes()
	disp := make(map[int64]graphview.Vec2, len(nodes))

	for i, a := range nodes {
		for _, b := range nodes[i+1:] {
			d := a.Location.Sub(b.Location)
			dist := d.Length()
			if dist < 1 {
				d = graphview.Vec2{X: 1}
				dist = 1
			}
			push := d.Div(dist).Mul(repulsion / (dist * dist))
			disp[a.ID()] = disp[a.ID()].Add(push)
			disp[b.ID()] = disp[b.ID()].Sub(push)
		}
	}

	for _, e := range g.Edges() {
		src, dst := e.Source(), e.Target()
		if src.ID() == dst.ID() {
			continue
		}
		d := dst.Location.Sub(src.Location)
		stretch := d.Length() - restLen
		pull := d.Mul(spring * stretch / maxf(d.Length(), 1))
		disp[src.ID()] = disp[src.ID()].Add(pull)
		disp[dst.ID()] = disp[dst.ID()].Sub(pull)
	}

	for _, n := range nodes {
		if n.Dragged() {
			continue
		}
		step := disp[n.ID()]
		if l := step.Length(); l > maxStep {
			step = step.Div(l).Mul(maxStep)
		}
		n.Location = n.Location.Add(step)
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
