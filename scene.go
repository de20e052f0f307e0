package blockviz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene owns every object of the demo: the ECB and CBC tile grids, the
// optional showcase shapes, the camera and the row selection.
//
// All encryption and layout happens in NewScene. Update only reads input
// and adjusts transforms. A Scene is not safe for concurrent use.
type Scene struct {
	controls   ControlsConfig
	layout     Layout
	rowStep    float32
	ecbBand    float32
	cbcBand    float32
	showcase   bool
	background Color
	source     SourceText
	ivs        IVSource
	logger     *slog.Logger

	camera   *OrthoCamera
	objects  []*Object
	ecb, cbc Grid
	rows     []Row

	selectedRow int
	selected    []*Object

	timeAtFirstFrame time.Time
	timeAtLastFrame  time.Time
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithLogger sets the scene logger.
func WithLogger(l *slog.Logger) SceneOption {
	return func(s *Scene) { s.logger = l }
}

// WithIVSource sets where CBC IVs come from.
func WithIVSource(ivs IVSource) SceneOption {
	return func(s *Scene) { s.ivs = ivs }
}

// WithSourceText replaces the penguin with text.
func WithSourceText(text SourceText) SceneOption {
	return func(s *Scene) { s.source = text }
}

// FrameTime is the timing of one Update call, in seconds.
type FrameTime struct {
	DT float32 // Since the previous frame
	T  float32 // Since the first frame
}

// NewScene encrypts the source text in ECB and CBC mode and lays both
// visualizations out.
func NewScene(cfg Config, opts ...SceneOption) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	background, _ := ParseColor(cfg.Window.Background)

	s := &Scene{
		controls:   cfg.Controls,
		layout:     cfg.LayoutParams(),
		rowStep:    cfg.Layout.RowStep,
		ecbBand:    cfg.Layout.ECBBand,
		cbcBand:    cfg.Layout.CBCBand,
		showcase:   cfg.Scene.Showcase,
		background: background,
		source:     Penguin,
		camera:     NewOrthoCamera(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.ivs == nil {
		s.ivs = NewPercentIVSource(cfg.Cipher.Seed)
	}
	if err := s.source.Validate(); err != nil {
		return nil, fmt.Errorf("source text: %w", err)
	}

	key, err := cfg.Key()
	if err != nil {
		return nil, err
	}
	bc, err := NewBlockCipher(key, s.ivs)
	if err != nil {
		return nil, err
	}

	if s.showcase {
		s.createShowcase()
	}

	start := time.Now()
	cur := Cursor{Step: s.rowStep}
	s.ecb, cur = BuildVisualization(s.source, bc, ModeECB, s.ecbBand, s.layout, cur)
	s.cbc, _ = BuildVisualization(s.source, bc, ModeCBC, s.cbcBand, s.layout, cur.Reset())

	for _, g := range []Grid{s.ecb, s.cbc} {
		for _, row := range g.Rows {
			s.rows = append(s.rows, row)
			s.objects = append(s.objects, row...)
		}
	}

	s.logger.Info("scene built",
		"lines", len(s.source),
		"rows", len(s.rows),
		"tiles", s.ecb.TileCount()+s.cbc.TileCount(),
		"tile_mode", s.layout.Tiles.String(),
		"chaining", s.layout.Line.Chaining.String(),
		"elapsed", time.Since(start))

	return s, nil
}

// createShowcase adds two rows of four shapes: solid quads on top, striped
// triangles below. They are the initial rotation selection.
func (s *Scene) createShowcase() {
	solid := SolidMaterial(Color{R: 0, G: 1, B: 0.8})
	striped := StripedMaterial(Color{R: 1, G: 0.8, B: 0})

	for _, shape := range []struct {
		geometry *Geometry
		material *Material
		y        float32
	}{
		{QuadGeometry, solid, 0.5},
		{TriangleGeometry, striped, -0.5},
	} {
		for i := 0; i < 4; i++ {
			o := NewObject(shape.geometry, shape.material)
			t := o.Transform()
			t.Scale = mgl32.Vec3{0.2, 0.2, 1}
			t.Position = mgl32.Vec3{float32(i-1)/2 - 0.25, shape.y, 0}
			o.Update()
			s.objects = append(s.objects, o)
			s.selected = append(s.selected, o)
		}
	}
}

// Rows returns every row, ECB rows first.
func (s *Scene) Rows() []Row { return s.rows }

// ECB returns the ECB grid.
func (s *Scene) ECB() Grid { return s.ecb }

// CBC returns the CBC grid.
func (s *Scene) CBC() Grid { return s.cbc }

// Objects returns every drawn object in draw order.
func (s *Scene) Objects() []*Object { return s.objects }

// Camera returns the scene camera.
func (s *Scene) Camera() *OrthoCamera { return s.camera }

// Background returns the clear color.
func (s *Scene) Background() Color { return s.background }

// SelectedRow returns the index of the selected row.
func (s *Scene) SelectedRow() int { return s.selectedRow }

// Selected returns the objects RotateSelected acts on.
func (s *Scene) Selected() []*Object { return s.selected }

// SelectObjects replaces the rotation selection.
func (s *Scene) SelectObjects(objs ...*Object) {
	s.selected = append(s.selected[:0], objs...)
}

// SelectRow moves the row selection by dir, wrapping at both ends.
// Negative dir moves up.
func (s *Scene) SelectRow(dir int) {
	n := len(s.rows)
	if n == 0 {
		return
	}
	s.selectedRow = ((s.selectedRow+dir)%n + n) % n
	s.logger.Debug("row selected", "row", s.selectedRow)
}

// MoveSelectedRow shifts every tile of the selected row by dx.
func (s *Scene) MoveSelectedRow(dx float32) {
	if len(s.rows) == 0 {
		return
	}
	s.rows[s.selectedRow].Move(dx)
}

// RotateSelected adds dTheta radians to the orientation of every selected
// object.
func (s *Scene) RotateSelected(dTheta float32) {
	for _, o := range s.selected {
		o.Transform().Orientation += dTheta
	}
}

// Resize adapts the camera to a width x height viewport.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.camera.SetAspectRatio(float32(width) / float32(height))
}

// Update applies one frame of input and recomputes every model matrix.
//
//	Left/Right  move the selected row (held)
//	Up/Down     select the previous/next row (on press)
//	A/D         rotate selected objects (held)
//	J/L/I/K     pan the camera left/right/up/down (held)
func (s *Scene) Update(input *InputState, now time.Time) FrameTime {
	if s.timeAtFirstFrame.IsZero() {
		s.timeAtFirstFrame = now
		s.timeAtLastFrame = now
	}
	ft := FrameTime{
		DT: float32(now.Sub(s.timeAtLastFrame).Seconds()),
		T:  float32(now.Sub(s.timeAtFirstFrame).Seconds()),
	}
	s.timeAtLastFrame = now

	if input != nil {
		s.handleInput(input)
	}

	for _, o := range s.objects {
		o.Update()
	}
	return ft
}

func (s *Scene) handleInput(input *InputState) {
	c := s.controls

	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		for k := KeyNone + 1; k < KeyCount; k++ {
			if input.KeyPressed(k) {
				s.logger.Debug("key pressed", "key", KeyName(k))
			}
			if input.KeyReleased(k) {
				s.logger.Debug("key released", "key", KeyName(k))
			}
		}
	}

	if input.KeyDown(KeyLeft) {
		s.MoveSelectedRow(-c.MoveStep)
	}
	if input.KeyDown(KeyRight) {
		s.MoveSelectedRow(c.MoveStep)
	}
	if input.KeyPressed(KeyUp) {
		s.SelectRow(-1)
	}
	if input.KeyPressed(KeyDown) {
		s.SelectRow(1)
	}

	if input.KeyDown(KeyA) {
		s.RotateSelected(c.RotateStep)
	}
	if input.KeyDown(KeyD) {
		s.RotateSelected(-c.RotateStep)
	}

	var pan mgl32.Vec2
	if input.KeyDown(KeyJ) {
		pan[0] -= c.PanStep
	}
	if input.KeyDown(KeyL) {
		pan[0] += c.PanStep
	}
	if input.KeyDown(KeyI) {
		pan[1] += c.PanStep
	}
	if input.KeyDown(KeyK) {
		pan[1] -= c.PanStep
	}
	if pan != (mgl32.Vec2{}) {
		s.camera.Pan(pan)
	}
}

// Draw appends every object to dl.
func (s *Scene) Draw(dl *DrawList) {
	for _, o := range s.objects {
		o.Draw(dl)
	}
}
