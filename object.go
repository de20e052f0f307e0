package blockviz

import "github.com/go-gl/mathgl/mgl32"

// Transform is the placement of an object in world space.
type Transform struct {
	Position    mgl32.Vec3
	Orientation float32 // Rotation about Z in radians
	Scale       mgl32.Vec3
}

// ModelMatrix composes scale, then rotation, then translation.
func (t Transform) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.HomogRotate3DZ(t.Orientation)).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// HasTransform is implemented by anything placed in the scene.
type HasTransform interface {
	Transform() *Transform
}

// Drawable is implemented by anything that can add itself to a draw list.
type Drawable interface {
	Draw(dl *DrawList)
}

// Object is a renderable geometry with a material and a transform.
// Tiles, showcase quads and triangles are all Objects.
type Object struct {
	transform Transform
	model     mgl32.Mat4
	geometry  *Geometry
	material  *Material
}

var (
	_ HasTransform = (*Object)(nil)
	_ Drawable     = (*Object)(nil)
)

// NewObject creates an object at the origin with unit scale.
func NewObject(geometry *Geometry, material *Material) *Object {
	o := &Object{
		transform: Transform{Scale: mgl32.Vec3{1, 1, 1}},
		geometry:  geometry,
		material:  material,
	}
	o.Update()
	return o
}

// Transform returns the object's mutable transform.
// Changes take effect on the next Update.
func (o *Object) Transform() *Transform { return &o.transform }

// Material returns the object's material.
func (o *Object) Material() *Material { return o.material }

// Geometry returns the object's geometry.
func (o *Object) Geometry() *Geometry { return o.geometry }

// ModelMatrix returns the matrix computed by the last Update.
func (o *Object) ModelMatrix() mgl32.Mat4 { return o.model }

// Update recomputes the model matrix from the transform.
func (o *Object) Update() {
	o.model = o.transform.ModelMatrix()
}

// Draw appends the object's transformed geometry to dl.
func (o *Object) Draw(dl *DrawList) {
	dl.AddObject(o)
}
