package blockviz_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/blockviz"
)

func TestOrthoCameraIdentity(t *testing.T) {
	c := blockviz.NewOrthoCamera()
	assert.True(t, c.ViewProj().ApproxEqual(mgl32.Ident4()))
}

func TestOrthoCameraPan(t *testing.T) {
	c := blockviz.NewOrthoCamera()
	c.Pan(mgl32.Vec2{0.5, -0.25})

	// The camera center maps to the middle of clip space.
	p := c.ViewProj().Mul4x1(mgl32.Vec4{0.5, -0.25, 0, 1})
	assert.InDelta(t, 0, p.X(), tol)
	assert.InDelta(t, 0, p.Y(), tol)

	p = c.ViewProj().Mul4x1(mgl32.Vec4{1.5, -0.25, 0, 1})
	assert.InDelta(t, 1, p.X(), tol)
}

func TestOrthoCameraAspectRatio(t *testing.T) {
	c := blockviz.NewOrthoCamera()
	c.SetAspectRatio(2)
	assert.Equal(t, mgl32.Vec2{4, 2}, c.WindowSize)

	// The right edge of a window twice as wide as tall is x = 2.
	p := c.ViewProj().Mul4x1(mgl32.Vec4{2, 1, 0, 1})
	assert.InDelta(t, 1, p.X(), tol)
	assert.InDelta(t, 1, p.Y(), tol)

	c.SetAspectRatio(0)
	assert.Equal(t, mgl32.Vec2{4, 2}, c.WindowSize)
}
