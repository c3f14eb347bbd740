// Package renderer2d batches solid quads into indexed triangle lists for a
// graphics backend.
package renderer2d

import (
	"math"

	"github.com/hubastard/grove-ui/engine/colors"
	"github.com/hubastard/grove-ui/engine/core"
)

// Vertex: pos2 + color4 => 6 floats
const (
	VertexStride = 6
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// Backend receives finished batches.
type Backend interface {
	// Submit uploads and draws one batch with the given view-projection
	// matrix. The slices are reused after Submit returns.
	Submit(vp [16]float32, verts []float32, inds []uint32)
}

// Renderer2D accumulates quads between BeginScene and EndScene and hands
// them to the backend in batches of at most maxQuads.
type Renderer2D struct {
	backend Backend

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	vp    [16]float32
	stats core.RenderStats
}

func New(backend Backend, maxQuads int) *Renderer2D {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	return &Renderer2D{
		backend:  backend,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*VertexStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
	}
}

// MaxQuads is the batch size.
func (rd *Renderer2D) MaxQuads() int { return rd.maxQuads }

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = core.RenderStats{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the counts since the last BeginScene.
func (rd *Renderer2D) Stats() core.RenderStats { return rd.stats }

// DrawQuad adds a quad centred on (cx, cy), rotated counter-clockwise by
// rotationRad. Fully transparent quads are skipped.
func (rd *Renderer2D) DrawQuad(cx, cy, w, h float32, color colors.Color, rotationRad float32) {
	if !color.Visible() {
		return
	}
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}

	halfW, halfH := w*0.5, h*0.5
	// BL, BR, TL, TR with y up.
	corners := [4][2]float32{
		{-halfW, -halfH},
		{halfW, -halfH},
		{-halfW, halfH},
		{halfW, halfH},
	}
	c, s := float32(1), float32(0)
	if rotationRad != 0 {
		c, s = float32(math.Cos(float64(rotationRad))), float32(math.Sin(float64(rotationRad)))
	}

	start := uint32(len(rd.verts) / VertexStride)
	for _, p := range corners {
		rd.verts = append(rd.verts,
			p[0]*c-p[1]*s+cx, p[0]*s+p[1]*c+cy,
			color[0], color[1], color[2], color[3],
		)
	}
	rd.inds = append(rd.inds,
		start+0, start+1, start+2,
		start+2, start+1, start+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}
	rd.backend.Submit(rd.vp, rd.verts, rd.inds)
	rd.stats.DrawCalls++
	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
}
