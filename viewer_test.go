package blockviz_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/blockviz"
)

// mockRenderer records what the viewer asks it to draw.
type mockRenderer struct {
	renderCalls int
	clears      []blockviz.Color
	vertices    int
	cmds        []blockviz.DrawCmd
	viewProj    mgl32.Mat4
	t           float32
	width       int
	height      int
	err         error
}

func (m *mockRenderer) Clear(c blockviz.Color) {
	m.clears = append(m.clears, c)
}

func (m *mockRenderer) Render(dl *blockviz.DrawList, viewProj mgl32.Mat4, t float32) error {
	m.renderCalls++
	m.vertices = len(dl.VtxBuffer)
	m.cmds = append(m.cmds[:0], dl.CmdBuffer...)
	m.viewProj = viewProj
	m.t = t
	return m.err
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

func TestViewerFrame(t *testing.T) {
	renderer := &mockRenderer{}
	viewer := blockviz.NewViewer(renderer, newScene(t, blockviz.DefaultConfig()))
	input := blockviz.NewInputState()
	start := time.Now()

	if err := viewer.Frame(input, start); err != nil {
		t.Fatalf("Frame() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if len(renderer.clears) != 1 || renderer.clears[0].Hex() != "#4d004d" {
		t.Errorf("expected one clear with the background, got %v", renderer.clears)
	}
	if want := 104 * 45 * 4; renderer.vertices != want {
		t.Errorf("expected %d vertices, got %d", want, renderer.vertices)
	}
	if len(renderer.cmds) != 1 {
		t.Errorf("all tiles are solid, expected 1 command, got %d", len(renderer.cmds))
	}
	if !renderer.viewProj.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("expected the default camera, got %v", renderer.viewProj)
	}

	if err := viewer.Frame(input, start.Add(time.Second)); err != nil {
		t.Fatalf("Frame() returned error: %v", err)
	}
	if viewer.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", viewer.Frames())
	}
	if renderer.t < 0.999 || renderer.t > 1.001 {
		t.Errorf("expected t = 1s, got %v", renderer.t)
	}
}

func TestViewerFrameShowcaseBatches(t *testing.T) {
	cfg := blockviz.DefaultConfig()
	cfg.Scene.Showcase = true
	renderer := &mockRenderer{}
	viewer := blockviz.NewViewer(renderer, newScene(t, cfg))

	if err := viewer.Frame(blockviz.NewInputState(), time.Now()); err != nil {
		t.Fatalf("Frame() returned error: %v", err)
	}

	want := []blockviz.MaterialKind{blockviz.MaterialSolid, blockviz.MaterialStriped, blockviz.MaterialSolid}
	if len(renderer.cmds) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(renderer.cmds))
	}
	for i, cmd := range renderer.cmds {
		if cmd.Material != want[i] {
			t.Errorf("command %d: material %s, want %s", i, cmd.Material, want[i])
		}
	}
	if renderer.cmds[1].ElemCount != 4*3 {
		t.Errorf("expected 4 triangles in the striped command, got %d indices", renderer.cmds[1].ElemCount)
	}
}

func TestViewerFrameError(t *testing.T) {
	boom := errors.New("device lost")
	renderer := &mockRenderer{err: boom}
	viewer := blockviz.NewViewer(renderer, newScene(t, blockviz.DefaultConfig()))

	if err := viewer.Frame(nil, time.Now()); !errors.Is(err, boom) {
		t.Errorf("expected renderer error, got %v", err)
	}
}

func TestViewerResize(t *testing.T) {
	renderer := &mockRenderer{}
	scene := newScene(t, blockviz.DefaultConfig())
	viewer := blockviz.NewViewer(renderer, scene)

	viewer.Resize(1600, 800)

	if renderer.width != 1600 || renderer.height != 800 {
		t.Errorf("renderer got %dx%d", renderer.width, renderer.height)
	}
	if got := scene.Camera().WindowSize.X(); got < 3.999 || got > 4.001 {
		t.Errorf("expected camera width 4, got %v", got)
	}
	if viewer.Scene() != scene {
		t.Error("Scene() returned a different scene")
	}
}

func TestViewerSetScene(t *testing.T) {
	renderer := &mockRenderer{}
	viewer := blockviz.NewViewer(renderer, newScene(t, blockviz.DefaultConfig()))
	if err := viewer.Frame(nil, time.Now()); err != nil {
		t.Fatalf("Frame() returned error: %v", err)
	}

	cfg := blockviz.DefaultConfig()
	cfg.Layout.Tiles = "rgb"
	next := newScene(t, cfg)
	viewer.SetScene(next)

	if err := viewer.Frame(nil, time.Now()); err != nil {
		t.Fatalf("Frame() returned error: %v", err)
	}
	if viewer.Scene() != next {
		t.Error("expected the replacement scene")
	}
	if want := 104 * 15 * 4; renderer.vertices != want {
		t.Errorf("expected %d vertices after the swap, got %d", want, renderer.vertices)
	}
	if viewer.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", viewer.Frames())
	}
}
