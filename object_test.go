package blockviz_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/blockviz"
)

func TestModelMatrixOrder(t *testing.T) {
	o := blockviz.NewObject(blockviz.QuadGeometry, nil)
	tr := o.Transform()
	tr.Scale = mgl32.Vec3{2, 2, 1}
	tr.Orientation = math.Pi / 2
	tr.Position = mgl32.Vec3{1, 1, 0}
	o.Update()

	// Scale, then rotate, then translate.
	p := o.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 1, p.X(), tol)
	assert.InDelta(t, 3, p.Y(), tol)
}

func TestNewObjectIdentity(t *testing.T) {
	o := blockviz.NewObject(blockviz.TriangleGeometry, blockviz.SolidMaterial(blockviz.Gray(0.5)))
	assert.True(t, o.ModelMatrix().ApproxEqual(mgl32.Ident4()))
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, o.Transform().Scale)
	assert.Equal(t, "triangle", o.Geometry().Name())
}

func TestUpdateIsExplicit(t *testing.T) {
	o := blockviz.NewObject(blockviz.QuadGeometry, nil)
	o.Transform().Position = mgl32.Vec3{5, 0, 0}
	assert.True(t, o.ModelMatrix().ApproxEqual(mgl32.Ident4()), "transform changes wait for Update")

	o.Update()
	assert.InDelta(t, 5, o.ModelMatrix().Col(3).X(), tol)
}

func TestGeometry(t *testing.T) {
	assert.Len(t, blockviz.QuadGeometry.Vertices(), 4)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, blockviz.QuadGeometry.Indices())
	assert.Len(t, blockviz.TriangleGeometry.Vertices(), 3)
	assert.Len(t, blockviz.TriangleGeometry.Indices(), 3)

	for _, g := range []*blockviz.Geometry{blockviz.QuadGeometry, blockviz.TriangleGeometry} {
		for _, v := range g.Vertices() {
			assert.LessOrEqual(t, v[0], float32(1))
			assert.GreaterOrEqual(t, v[0], float32(-1))
			assert.LessOrEqual(t, v[1], float32(1))
			assert.GreaterOrEqual(t, v[1], float32(-1))
		}
	}
}
