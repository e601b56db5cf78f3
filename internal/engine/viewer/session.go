package viewer

import (
	"errors"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/mopinfish/gltfview/pkg/scene"
)

// State is the load-orchestration state of a viewer.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	default:
		return "ready"
	}
}

// ErrEmptyInput is returned when load is called with no bytes at all.
var ErrEmptyInput = errors.New("empty asset input")

// session tracks what geometry the viewer holds and guards the transitions
// around a load. It carries no GPU state, so the "never regress a successful
// load" guarantee is testable without a GL context.
type session struct {
	state   State
	buffers scene.Buffers
	policy  scene.OverflowPolicy
	log     *zap.Logger
}

func newSession(policy scene.OverflowPolicy, log *zap.Logger) *session {
	if log == nil {
		log = zap.NewNop()
	}
	return &session{state: StateEmpty, policy: policy, log: log}
}

// load runs decode and accumulation and decides what the GPU should hold
// next. The returned flag reports whether an upload should happen; when it
// is false the previously uploaded buffers remain current. Only empty or
// undersized input surfaces an error; anything else degrades per policy.
func (s *session) load(data []byte) (scene.Buffers, bool, error) {
	if len(data) == 0 {
		return scene.Buffers{}, false, ErrEmptyInput
	}

	prev := s.state
	s.state = StateLoading

	doc, err := scene.Decode(data)
	if err != nil {
		if errors.Is(err, scene.ErrTooSmall) {
			// Input validation failure: report it and leave the state
			// exactly as it was before the call.
			s.state = prev
			return scene.Buffers{}, false, err
		}
		return s.recover(prev, err)
	}

	return s.finish(prev, doc)
}

// loadDocument mirrors load for an already-decoded document (file loads,
// where external buffers were resolved against the file's directory).
func (s *session) loadDocument(doc *gltf.Document) (scene.Buffers, bool, error) {
	prev := s.state
	s.state = StateLoading
	return s.finish(prev, doc)
}

func (s *session) finish(prev State, doc *gltf.Document) (scene.Buffers, bool, error) {
	buf, err := scene.Accumulate(doc, s.policy)
	if err != nil {
		return s.recover(prev, err)
	}

	if buf.Empty() {
		s.log.Info("no geometry extracted, using placeholder cube")
		buf = scene.PlaceholderCube()
	}

	s.buffers = buf
	s.state = StateReady
	return buf, true, nil
}

// recover resolves a failed load: previously loaded geometry stays current,
// otherwise the placeholder cube goes up so the viewer never goes blank.
func (s *session) recover(prev State, cause error) (scene.Buffers, bool, error) {
	if prev == StateReady {
		s.log.Warn("load failed, keeping previous geometry", zap.Error(cause))
		s.state = StateReady
		return scene.Buffers{}, false, nil
	}

	s.log.Warn("load failed, using placeholder cube", zap.Error(cause))
	s.buffers = scene.PlaceholderCube()
	s.state = StateReady
	return s.buffers, true, nil
}
