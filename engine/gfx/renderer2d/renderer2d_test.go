package renderer2d

import (
	"math"
	"testing"

	"github.com/hubastard/grove-ui/engine/colors"
)

type batch struct {
	vp    [16]float32
	verts []float32
	inds  []uint32
}

type recordingBackend struct{ batches []batch }

func (b *recordingBackend) Submit(vp [16]float32, verts []float32, inds []uint32) {
	b.batches = append(b.batches, batch{
		vp:    vp,
		verts: append([]float32(nil), verts...),
		inds:  append([]uint32(nil), inds...),
	})
}

func TestRenderer2D_QuadGeometry(t *testing.T) {
	be := &recordingBackend{}
	rd := New(be, 4)
	vp := [16]float32{0: 1, 5: 1, 10: 1, 15: 1}

	rd.BeginScene(vp)
	rd.DrawQuad(10, 20, 4, 2, colors.Red, 0)
	rd.EndScene()

	if len(be.batches) != 1 {
		t.Fatalf("submitted %d batches, want 1", len(be.batches))
	}
	got := be.batches[0]
	if got.vp != vp {
		t.Error("batch carried the wrong matrix")
	}
	wantPos := [][2]float32{{8, 19}, {12, 19}, {8, 21}, {12, 21}}
	for i, p := range wantPos {
		v := got.verts[i*VertexStride:]
		if v[0] != p[0] || v[1] != p[1] {
			t.Errorf("vertex %d = (%v, %v), want %v", i, v[0], v[1], p)
		}
		if colors.Color(v[2:6]) != colors.Red {
			t.Errorf("vertex %d colour = %v", i, v[2:6])
		}
	}
	wantInds := []uint32{0, 1, 2, 2, 1, 3}
	for i := range wantInds {
		if got.inds[i] != wantInds[i] {
			t.Fatalf("indices = %v, want %v", got.inds, wantInds)
		}
	}
}

func TestRenderer2D_Rotation(t *testing.T) {
	be := &recordingBackend{}
	rd := New(be, 1)

	rd.BeginScene([16]float32{})
	rd.DrawQuad(0, 0, 2, 2, colors.White, math.Pi/2)
	rd.EndScene()

	// BL (-1,-1) turns to (1,-1) after a quarter turn counter-clockwise.
	v := be.batches[0].verts
	if math.Abs(float64(v[0]-1)) > 1e-6 || math.Abs(float64(v[1]+1)) > 1e-6 {
		t.Errorf("rotated BL = (%v, %v), want (1, -1)", v[0], v[1])
	}
}

func TestRenderer2D_FlushesAtCapacity(t *testing.T) {
	be := &recordingBackend{}
	rd := New(be, 2)

	rd.BeginScene([16]float32{})
	for i := 0; i < 5; i++ {
		rd.DrawQuad(float32(i), 0, 1, 1, colors.Blue, 0)
	}
	rd.DrawQuad(0, 0, 1, 1, colors.Transparent, 0)
	rd.EndScene()

	if len(be.batches) != 3 {
		t.Fatalf("submitted %d batches, want 3", len(be.batches))
	}
	if n := len(be.batches[2].inds); n != indsPerQuad {
		t.Errorf("last batch has %d indices, want %d", n, indsPerQuad)
	}
	if last := be.batches[1].inds; last[0] != 0 {
		t.Error("indices were not rebased after a flush")
	}
	st := rd.Stats()
	if st.DrawCalls != 3 || st.QuadCount != 5 {
		t.Errorf("Stats() = %+v, want 3 draws and 5 quads", st)
	}

	rd.BeginScene([16]float32{})
	rd.EndScene()
	if rd.Stats().DrawCalls != 0 || len(be.batches) != 3 {
		t.Error("empty scene should not submit")
	}
}

func TestNew_DefaultCapacity(t *testing.T) {
	if got := New(&recordingBackend{}, 0).MaxQuads(); got != 10000 {
		t.Errorf("MaxQuads() = %d, want 10000", got)
	}
}
