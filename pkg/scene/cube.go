package scene

// PlaceholderCube returns the deterministic fallback geometry substituted
// when an asset yields no renderable primitives: an axis-aligned cube with
// 8 vertices and 36 indices.
func PlaceholderCube() Buffers {
	vertices := []float32{
		// front
		-1, -1, 1,
		1, -1, 1,
		1, 1, 1,
		-1, 1, 1,
		// back
		-1, -1, -1,
		-1, 1, -1,
		1, 1, -1,
		1, -1, -1,
	}
	indices := []uint16{
		0, 1, 2, 0, 2, 3, // front
		4, 5, 6, 4, 6, 7, // back
		4, 0, 3, 4, 3, 5, // left
		1, 7, 6, 1, 6, 2, // right
		3, 2, 6, 3, 6, 5, // top
		4, 7, 1, 4, 1, 0, // bottom
	}
	return Buffers{
		Vertices:   vertices,
		Indices:    indices,
		IndexCount: uint32(len(indices)),
	}
}
