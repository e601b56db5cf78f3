package scene

import (
	"errors"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func TestAccumulateRebasesSecondPrimitive(t *testing.T) {
	doc := gltf.NewDocument()
	addMesh(doc, "first", triangle())
	second := addMesh(doc, "second", triangle())
	second.Indices = gltf.Index(modeler.WriteIndices(doc, []uint16{0, 1, 2}))

	buf, err := Accumulate(doc, ClampOverflow)
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}

	if len(buf.Vertices) != 18 {
		t.Errorf("vertex buffer = %d floats, want 3*(3+3) = 18", len(buf.Vertices))
	}
	if buf.IndexCount != 6 {
		t.Errorf("IndexCount = %d, want 6", buf.IndexCount)
	}
	if buf.IndexCount%3 != 0 {
		t.Errorf("IndexCount = %d, want a multiple of 3", buf.IndexCount)
	}
	want := []uint16{0, 1, 2, 3, 4, 5}
	for i, v := range want {
		if buf.Indices[i] != v {
			t.Errorf("index %d = %d, want %d", i, buf.Indices[i], v)
		}
	}
}

func TestAccumulateEmptyDocument(t *testing.T) {
	doc := gltf.NewDocument()

	buf, err := Accumulate(doc, ClampOverflow)
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}
	if !buf.Empty() {
		t.Error("Accumulate() of an empty document should yield empty buffers")
	}
	if buf.IndexCount != 0 {
		t.Errorf("IndexCount = %d, want 0", buf.IndexCount)
	}
}

func TestAccumulateSkipsBrokenPrimitive(t *testing.T) {
	doc := gltf.NewDocument()
	broken := addMesh(doc, "broken", triangle())
	// Point the index stream at the float position accessor: the index read
	// fails, the primitive is skipped, and the rest still accumulates.
	broken.Indices = gltf.Index(broken.Attributes[gltf.POSITION])
	addMesh(doc, "good", triangle())

	buf, err := Accumulate(doc, ClampOverflow)
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}
	if buf.IndexCount != 3 {
		t.Errorf("IndexCount = %d, want 3 (only the good primitive)", buf.IndexCount)
	}
	if len(buf.Vertices) != 9 {
		t.Errorf("vertex buffer = %d floats, want 9", len(buf.Vertices))
	}
	// The surviving primitive starts at offset zero
	want := []uint16{0, 1, 2}
	for i, v := range want {
		if buf.Indices[i] != v {
			t.Errorf("index %d = %d, want %d", i, buf.Indices[i], v)
		}
	}
}

// bigDoc builds a document whose second primitive rebases past the 16-bit
// index space: 65535 vertices in the first primitive, 3 in the second.
func bigDoc(t *testing.T) *gltf.Document {
	t.Helper()
	doc := gltf.NewDocument()
	many := make([][3]float32, 65535)
	addMesh(doc, "big", many)
	addMesh(doc, "tail", triangle())
	return doc
}

func TestAccumulateClampPolicy(t *testing.T) {
	buf, err := Accumulate(bigDoc(t), ClampOverflow)
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}
	n := len(buf.Indices)
	// Tail primitive indices 0,1,2 rebase to 65535, 65536, 65537; the last
	// two clamp to the 16-bit maximum instead of wrapping.
	tail := buf.Indices[n-3:]
	want := []uint16{65535, 65535, 65535}
	for i, v := range want {
		if tail[i] != v {
			t.Errorf("tail index %d = %d, want %d", i, tail[i], v)
		}
	}
}

func TestAccumulateFailPolicy(t *testing.T) {
	_, err := Accumulate(bigDoc(t), FailOverflow)
	if !errors.Is(err, ErrTooManyVertices) {
		t.Errorf("Accumulate() error = %v, want ErrTooManyVertices", err)
	}
}

func TestParsePolicy(t *testing.T) {
	if ParsePolicy("fail") != FailOverflow {
		t.Error(`ParsePolicy("fail") should be FailOverflow`)
	}
	if ParsePolicy("clamp") != ClampOverflow {
		t.Error(`ParsePolicy("clamp") should be ClampOverflow`)
	}
	if ParsePolicy("") != ClampOverflow {
		t.Error("ParsePolicy default should be ClampOverflow")
	}
}

func TestPlaceholderCube(t *testing.T) {
	cube := PlaceholderCube()
	if len(cube.Vertices) != 24 {
		t.Errorf("cube vertices = %d floats, want 24 (8 vertices)", len(cube.Vertices))
	}
	if cube.IndexCount != 36 {
		t.Errorf("cube IndexCount = %d, want 36", cube.IndexCount)
	}
	for i, idx := range cube.Indices {
		if idx >= 8 {
			t.Errorf("cube index %d = %d, out of range", i, idx)
		}
	}
}
