package scene

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"
)

var (
	ErrTooSmall       = errors.New("asset too small: need at least 4 bytes")
	ErrMalformedAsset = errors.New("malformed asset")
)

// glbMagic is the signature carried by binary glTF containers.
var glbMagic = []byte("glTF")

// ContainerKind tells binary-tagged assets apart from text/JSON documents.
type ContainerKind int

const (
	ContainerBinary ContainerKind = iota
	ContainerText
)

func (k ContainerKind) String() string {
	if k == ContainerBinary {
		return "GLB (binary)"
	}
	return "glTF (JSON)"
}

// DetectContainer inspects the first 4 bytes for the GLB magic.
// The result is advisory: both kinds go through the same parser.
func DetectContainer(data []byte) ContainerKind {
	if len(data) >= 4 && bytes.Equal(data[:4], glbMagic) {
		return ContainerBinary
	}
	return ContainerText
}

// Decode parses raw asset bytes into a glTF document. Binary buffers embedded
// in the container (GLB chunks, data URIs) are resolved; a document with zero
// meshes is still a successful decode.
func Decode(data []byte) (*gltf.Document, error) {
	if len(data) < 4 {
		return nil, ErrTooSmall
	}

	kind := DetectContainer(data)
	log.Debug("decoding asset",
		zap.Int("bytes", len(data)),
		zap.Stringer("container", kind),
	)

	if kind == ContainerText && !utf8.Valid(data) {
		// Encoding mismatch alone never aborts a decode; the parser reports
		// its own error if the payload really is garbage.
		log.Warn("text container is not valid UTF-8, attempting parse anyway")
	}

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAsset, err)
	}

	log.Debug("asset decoded",
		zap.Int("meshes", len(doc.Meshes)),
		zap.Int("buffers", len(doc.Buffers)),
		zap.Int("nodes", len(doc.Nodes)),
	)
	return doc, nil
}

// DecodeFile parses an asset from disk. Unlike Decode, external .bin buffers
// referenced by relative URI resolve against the file's directory.
func DecodeFile(path string) (*gltf.Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAsset, err)
	}
	return doc, nil
}
