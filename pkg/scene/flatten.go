package scene

import (
	"fmt"
	gomath "math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"
)

// FlattenedPrimitive holds one primitive's geometry ready for accumulation:
// positions flattened to x,y,z triples and indices narrowed to 16 bits.
type FlattenedPrimitive struct {
	Vertices []float32
	Indices  []uint16
}

// FlattenPrimitive extracts positions and indices from a glTF primitive.
// Returns (nil, nil) when the primitive carries no renderable geometry,
// either no position attribute or empty streams. That is a skip, not an error.
func FlattenPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*FlattenedPrimitive, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		log.Debug("primitive has no position attribute, skipping")
		return nil, nil
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}

	if prim.Mode != gltf.PrimitiveTriangles {
		// Still drawn as a triangle list so the whole scene renders through
		// one draw call.
		log.Warn("non-triangle primitive mode, drawing as triangle list",
			zap.Int("mode", int(prim.Mode)),
		)
	}

	vertices := make([]float32, 0, len(positions)*3)
	for _, p := range positions {
		vertices = append(vertices, p[0], p[1], p[2])
	}

	var indices []uint16
	if prim.Indices != nil {
		raw, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("reading indices: %w", err)
		}
		indices = make([]uint16, len(raw))
		for i, v := range raw {
			indices[i] = narrowIndex(v)
		}
	} else {
		// No index stream: draw the positions in order.
		indices = make([]uint16, len(positions))
		for i := range indices {
			indices[i] = narrowIndex(uint32(i))
		}
	}

	if len(vertices) == 0 || len(indices) == 0 {
		log.Debug("primitive produced no geometry, skipping")
		return nil, nil
	}
	return &FlattenedPrimitive{Vertices: vertices, Indices: indices}, nil
}

// narrowIndex narrows a 32-bit index into the 16-bit index space. Values
// that do not fit are clamped, never wrapped.
func narrowIndex(v uint32) uint16 {
	if v > gomath.MaxUint16 {
		log.Warn("index exceeds 16-bit range, clamping", zap.Uint32("index", v))
		return gomath.MaxUint16
	}
	return uint16(v)
}
