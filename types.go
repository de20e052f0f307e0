package blockviz

// Vertex is one world-space vertex of a draw list.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos   [2]float32 // World position (x, y)
	Local [2]float32 // Position in the geometry's own [-1, 1] space
	Color uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by material kind to minimize uniform changes.
type DrawCmd struct {
	ElemCount    uint32       // Number of indices to draw
	Material     MaterialKind // Shading for the whole command
	VertexOffset uint32       // Offset into vertex buffer
	IndexOffset  uint32       // Offset into index buffer
}

// Packed color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite uint32 = 0xFFFFFFFF
	ColorBlack uint32 = 0xFF000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255+0.5),
		uint8(clampf(g, 0, 1)*255+0.5),
		uint8(clampf(b, 0, 1)*255+0.5),
		uint8(clampf(a, 0, 1)*255+0.5),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
