package blockviz

import "github.com/go-gl/mathgl/mgl32"

// OrthoCamera is a 2D orthographic camera. The visible window is centered
// on Position and WindowSize world units wide and tall.
type OrthoCamera struct {
	Position   mgl32.Vec2
	Rotation   float32
	WindowSize mgl32.Vec2

	viewProj mgl32.Mat4
}

// NewOrthoCamera returns a camera showing [-1, 1] on both axes.
func NewOrthoCamera() *OrthoCamera {
	c := &OrthoCamera{WindowSize: mgl32.Vec2{2, 2}}
	c.Update()
	return c
}

// SetAspectRatio widens or narrows the window to ar (width / height),
// keeping its height.
func (c *OrthoCamera) SetAspectRatio(ar float32) {
	if ar <= 0 {
		return
	}
	c.WindowSize[0] = c.WindowSize[1] * ar
	c.Update()
}

// Pan moves the camera by d world units.
func (c *OrthoCamera) Pan(d mgl32.Vec2) {
	c.Position = c.Position.Add(d)
	c.Update()
}

// Update recomputes the view-projection matrix.
func (c *OrthoCamera) Update() {
	camera := mgl32.Translate3D(c.Position.X(), c.Position.Y(), 0).
		Mul4(mgl32.HomogRotate3DZ(c.Rotation)).
		Mul4(mgl32.Scale3D(c.WindowSize.X()/2, c.WindowSize.Y()/2, 1))
	c.viewProj = camera.Inv()
}

// ViewProj returns the matrix mapping world space to clip space.
func (c *OrthoCamera) ViewProj() mgl32.Mat4 {
	return c.viewProj
}
