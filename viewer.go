package blockviz

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer is the interface for drawing a scene's draw data.
type Renderer interface {
	Clear(c Color)
	Render(dl *DrawList, viewProj mgl32.Mat4, t float32) error
	Resize(width, height int)
}

// Viewer drives a Scene with a Renderer, one frame at a time.
type Viewer struct {
	renderer Renderer
	scene    *Scene
	frames   uint64
}

// NewViewer creates a viewer for scene.
func NewViewer(renderer Renderer, scene *Scene) *Viewer {
	return &Viewer{renderer: renderer, scene: scene}
}

// Frame updates the scene with input and renders it.
// Call this once per frame after polling input.
func (v *Viewer) Frame(input *InputState, now time.Time) error {
	ft := v.scene.Update(input, now)

	v.renderer.Clear(v.scene.Background())

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	v.scene.Draw(dl)
	dl.Finalize()

	v.frames++
	return v.renderer.Render(dl, v.scene.Camera().ViewProj(), ft.T)
}

// Resize notifies the renderer and the scene camera of a new framebuffer
// size.
func (v *Viewer) Resize(width, height int) {
	v.renderer.Resize(width, height)
	v.scene.Resize(width, height)
}

// SetScene replaces the driven scene. The frame counter keeps running.
func (v *Viewer) SetScene(scene *Scene) {
	v.scene = scene
}

// Scene returns the driven scene.
func (v *Viewer) Scene() *Scene { return v.scene }

// Frames returns the number of frames rendered.
func (v *Viewer) Frames() uint64 { return v.frames }
