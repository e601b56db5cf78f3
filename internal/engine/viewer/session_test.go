package viewer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mopinfish/gltfview/pkg/scene"
)

// triangleGLB builds a binary asset holding one unindexed triangle.
func triangleGLB(t *testing.T) []byte {
	t.Helper()

	doc := gltf.NewDocument()
	positions := [][3]float32{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: modeler.WritePosition(doc, positions),
			},
		}},
	})

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadEmptyInput(t *testing.T) {
	s := newSession(scene.ClampOverflow, nil)

	_, upload, err := s.load(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if upload {
		t.Error("no upload expected for empty input")
	}
	if s.state != StateEmpty {
		t.Errorf("state = %v, want %v", s.state, StateEmpty)
	}
}

func TestLoadTooSmall(t *testing.T) {
	s := newSession(scene.ClampOverflow, nil)

	_, upload, err := s.load([]byte("gl"))
	if !errors.Is(err, scene.ErrTooSmall) {
		t.Fatalf("expected ErrTooSmall, got %v", err)
	}
	if upload {
		t.Error("no upload expected for undersized input")
	}
	if s.state != StateEmpty {
		t.Errorf("state = %v, want %v", s.state, StateEmpty)
	}
}

func TestLoadNoGeometryGetsPlaceholder(t *testing.T) {
	s := newSession(scene.ClampOverflow, nil)

	buf, upload, err := s.load([]byte(`{"asset":{"version":"2.0"}}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !upload {
		t.Fatal("expected an upload")
	}
	if buf.IndexCount != 36 {
		t.Errorf("IndexCount = %d, want 36 (placeholder cube)", buf.IndexCount)
	}
	if s.state != StateReady {
		t.Errorf("state = %v, want %v", s.state, StateReady)
	}
}

func TestLoadTriangle(t *testing.T) {
	s := newSession(scene.ClampOverflow, nil)

	buf, upload, err := s.load(triangleGLB(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !upload {
		t.Fatal("expected an upload")
	}
	if buf.IndexCount != 3 {
		t.Fatalf("IndexCount = %d, want 3", buf.IndexCount)
	}
	for i, idx := range buf.Indices {
		if idx != uint16(i) {
			t.Errorf("Indices[%d] = %d, want %d", i, idx, i)
		}
	}
	if s.state != StateReady {
		t.Errorf("state = %v, want %v", s.state, StateReady)
	}
}

func TestLoadMalformedFirstGetsPlaceholder(t *testing.T) {
	s := newSession(scene.ClampOverflow, nil)

	buf, upload, err := s.load([]byte("this is not an asset"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !upload {
		t.Fatal("expected an upload")
	}
	if buf.IndexCount != 36 {
		t.Errorf("IndexCount = %d, want 36 (placeholder cube)", buf.IndexCount)
	}
	if s.state != StateReady {
		t.Errorf("state = %v, want %v", s.state, StateReady)
	}
}

func TestLoadMalformedAfterSuccessKeepsGeometry(t *testing.T) {
	s := newSession(scene.ClampOverflow, nil)

	if _, _, err := s.load(triangleGLB(t)); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if s.buffers.IndexCount != 3 {
		t.Fatalf("IndexCount = %d, want 3", s.buffers.IndexCount)
	}

	_, upload, err := s.load([]byte("garbage garbage garbage"))
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if upload {
		t.Error("no upload expected when keeping previous geometry")
	}
	if s.state != StateReady {
		t.Errorf("state = %v, want %v", s.state, StateReady)
	}
	if s.buffers.IndexCount != 3 {
		t.Errorf("IndexCount = %d, want 3 (previous geometry)", s.buffers.IndexCount)
	}
}

func TestStateString(t *testing.T) {
	if StateEmpty.String() != "empty" || StateLoading.String() != "loading" || StateReady.String() != "ready" {
		t.Error("unexpected state names")
	}
}
