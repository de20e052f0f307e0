package blockviz

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// maxCmdVertices is the most vertices one command can address with uint16
// indices.
const maxCmdVertices = 1 << 16

// drawListPool provides reuse of DrawList buffers.
// The scene is rebuilt into a draw list every frame, so buffers are kept.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 4096),
			IdxBuffer: make([]uint16, 0, 6144),
			CmdBuffer: make([]DrawCmd, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates world-space primitives for a frame.
// It batches primitives by material kind so each kind is one draw call.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data, relative to the command's VertexOffset

	material     MaterialKind // Current material for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
	finalized    bool
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.material = MaterialSolid
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
	dl.finalized = false
}

// SetMaterial sets the material kind for subsequent primitives.
func (dl *DrawList) SetMaterial(kind MaterialKind) {
	if len(dl.CmdBuffer) > 0 && dl.material == kind {
		return
	}
	dl.material = kind
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		Material:     dl.material,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// reserve returns the index, relative to the current command, at which the
// next n vertices will start. A new command is started when uint16 indices
// would overflow.
func (dl *DrawList) reserve(n int) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+n > maxCmdVertices {
		dl.splitDraw()
	}
	return uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
}

// AddObject transforms o's geometry by its model matrix and appends it
// using o's material.
func (dl *DrawList) AddObject(o *Object) {
	if o == nil || o.geometry == nil {
		return
	}

	kind, color := MaterialSolid, ColorWhite
	if o.material != nil {
		kind, color = o.material.Kind, o.material.Color.Packed()
	}
	dl.SetMaterial(kind)

	base := dl.reserve(len(o.geometry.vertices))
	for _, p := range o.geometry.vertices {
		w := o.model.Mul4x1(mgl32.Vec4{p[0], p[1], 0, 1})
		dl.VtxBuffer = append(dl.VtxBuffer, Vertex{
			Pos:   [2]float32{w.X(), w.Y()},
			Local: p,
			Color: color,
		})
	}
	for _, idx := range o.geometry.indices {
		dl.IdxBuffer = append(dl.IdxBuffer, base+idx)
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added. Calling it again is a no-op.
func (dl *DrawList) Finalize() {
	if dl.finalized {
		return
	}
	dl.finalized = true

	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
