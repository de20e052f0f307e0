package blockviz

// Geometry is a fixed 2D shape in local [-1, 1] space.
type Geometry struct {
	name     string
	vertices [][2]float32
	indices  []uint16
}

// Name returns the geometry name.
func (g *Geometry) Name() string { return g.name }

// Vertices returns the local-space vertices.
func (g *Geometry) Vertices() [][2]float32 { return g.vertices }

// Indices returns triangle indices into Vertices.
func (g *Geometry) Indices() []uint16 { return g.indices }

var (
	// QuadGeometry is the square spanning [-1, 1] on both axes.
	QuadGeometry = &Geometry{
		name: "quad",
		vertices: [][2]float32{
			{-1, -1},
			{1, -1},
			{1, 1},
			{-1, 1},
		},
		indices: []uint16{0, 1, 2, 0, 2, 3},
	}

	// TriangleGeometry is an upward-pointing triangle inside [-1, 1].
	TriangleGeometry = &Geometry{
		name: "triangle",
		vertices: [][2]float32{
			{-1, -1},
			{1, -1},
			{0, 1},
		},
		indices: []uint16{0, 1, 2},
	}
)
