package scene

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"
)

// OverflowPolicy controls what happens when the accumulated vertex count
// outgrows the 16-bit index space.
type OverflowPolicy int

const (
	// ClampOverflow clamps rebased indices at the 16-bit maximum.
	ClampOverflow OverflowPolicy = iota
	// FailOverflow aborts accumulation with ErrTooManyVertices.
	FailOverflow
)

// ParsePolicy maps a config string to an OverflowPolicy. Unknown values
// default to clamping.
func ParsePolicy(s string) OverflowPolicy {
	if s == "fail" {
		return FailOverflow
	}
	return ClampOverflow
}

var ErrTooManyVertices = errors.New("scene exceeds 16-bit index space")

// Buffers is the flattened scene geometry ready for GPU upload: one vertex
// buffer of x,y,z floats, one 16-bit index buffer, and the draw count.
type Buffers struct {
	Vertices   []float32
	Indices    []uint16
	IndexCount uint32
}

// Empty reports whether no geometry was accumulated.
func (b Buffers) Empty() bool {
	return len(b.Vertices) == 0
}

// Accumulate walks every mesh and primitive of the document in file order,
// rebases each primitive's indices by the running vertex count, and
// concatenates everything into a single buffer pair. A primitive that fails
// to flatten is logged and skipped; the rest of the scene still accumulates.
//
// The running offset is a 32-bit counter. Narrowing to 16 bits happens only
// at the point each rebased index is written, under the given policy.
func Accumulate(doc *gltf.Document, policy OverflowPolicy) (Buffers, error) {
	var buf Buffers
	var vertexOffset uint32
	clamped := false

	for mi, mesh := range doc.Meshes {
		name := mesh.Name
		if name == "" {
			name = "unnamed"
		}
		log.Debug("processing mesh", zap.Int("mesh", mi), zap.String("name", name))

		for pi, prim := range mesh.Primitives {
			fp, err := FlattenPrimitive(doc, prim)
			if err != nil {
				// One broken primitive must not take down the whole scene.
				log.Warn("skipping primitive",
					zap.Int("mesh", mi),
					zap.Int("primitive", pi),
					zap.Error(err),
				)
				continue
			}
			if fp == nil {
				log.Debug("primitive skipped (no geometry)",
					zap.Int("mesh", mi),
					zap.Int("primitive", pi),
				)
				continue
			}

			for _, idx := range fp.Indices {
				rebased := vertexOffset + uint32(idx)
				if rebased > gomath.MaxUint16 {
					if policy == FailOverflow {
						return Buffers{}, fmt.Errorf("%w: index %d", ErrTooManyVertices, rebased)
					}
					if !clamped {
						log.Warn("vertex count exceeds 16-bit index space, clamping",
							zap.Uint32("index", rebased),
						)
						clamped = true
					}
					rebased = gomath.MaxUint16
				}
				buf.Indices = append(buf.Indices, uint16(rebased))
			}

			buf.Vertices = append(buf.Vertices, fp.Vertices...)
			vertexOffset += uint32(len(fp.Vertices) / 3)

			log.Debug("primitive accumulated",
				zap.Int("mesh", mi),
				zap.Int("primitive", pi),
				zap.Int("vertices", len(fp.Vertices)/3),
				zap.Int("indices", len(fp.Indices)),
			)
		}
	}

	buf.IndexCount = uint32(len(buf.Indices))
	return buf, nil
}
