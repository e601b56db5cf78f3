// Package scene decodes glTF assets and flattens their geometry into a single
// vertex/index buffer pair suitable for one indexed draw call.
//
// Decoding is deliberately forgiving: a primitive that cannot be read is
// skipped, not fatal, so a partially broken asset still renders whatever
// geometry survives.
package scene

import "go.uber.org/zap"

var log = zap.NewNop()

// SetLogger routes the package's diagnostics to the given logger. Skipped
// primitives and narrowed indices are reported here and nowhere else.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}
