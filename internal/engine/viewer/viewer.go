// Package viewer drives the GPU side of the asset pipeline: the shader
// program, the shared vertex/index buffer pair, the orbit camera, and the
// per-frame draw.
package viewer

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/mopinfish/gltfview/internal/engine/camera"
	"github.com/mopinfish/gltfview/internal/engine/shader"
	"github.com/mopinfish/gltfview/internal/engine/window"
	"github.com/mopinfish/gltfview/internal/logger"
	"github.com/mopinfish/gltfview/pkg/math"
	"github.com/mopinfish/gltfview/pkg/scene"
)

const (
	fovY      = float32(45.0 * gomath.Pi / 180.0)
	nearPlane = 0.1
	farPlane  = 100.0
)

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 a_position;

uniform mat4 u_mvp_matrix;

void main() {
	gl_Position = u_mvp_matrix * vec4(a_position, 1.0);
}
`

const fragmentShaderSource = `
#version 410 core

uniform vec3 u_color;

out vec4 fragColor;

void main() {
	fragColor = vec4(u_color, 1.0);
}
`

// Config holds viewer configuration.
type Config struct {
	Width    int
	Height   int
	Overflow scene.OverflowPolicy
}

// Viewer owns the GPU resources for one rendering surface: one shader
// program, one vertex buffer, one index buffer, and the camera state.
// Resources are created once at construction and released by Close.
type Viewer struct {
	win *window.Window

	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	locMVP   int32
	locColor int32

	indexCount int32
	projection math.Mat4
	cam        *camera.OrbitCamera
	session    *session
}

// New creates a viewer bound to the window's GL context.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(win *window.Window, cfg Config) (*Viewer, error) {
	v := &Viewer{
		win:     win,
		session: newSession(cfg.Overflow, logger.Log),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	var err error
	v.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	if v.locMVP, err = shader.UniformLocation(v.program, "u_mvp_matrix"); err != nil {
		gl.DeleteProgram(v.program)
		return nil, err
	}
	if v.locColor, err = shader.UniformLocation(v.program, "u_color"); err != nil {
		gl.DeleteProgram(v.program)
		return nil, err
	}

	// One VAO with the position layout; both buffers are rewritten in full
	// on every load.
	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)

	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &v.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, v.ebo)

	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	v.cam = camera.New(math.Vec3{X: 3, Y: 3, Z: 5}, math.Vec3{})
	v.Resize(cfg.Width, cfg.Height)

	logger.Info("viewer initialized")
	return v, nil
}

// Close releases the viewer's GPU resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	if v.vao != 0 {
		gl.DeleteVertexArrays(1, &v.vao)
	}
	if v.vbo != 0 {
		gl.DeleteBuffers(1, &v.vbo)
	}
	if v.ebo != 0 {
		gl.DeleteBuffers(1, &v.ebo)
	}
	if v.program != 0 {
		gl.DeleteProgram(v.program)
	}
}

// Load replaces the current geometry with the asset in data. Malformed
// assets degrade to the placeholder cube, or keep the previously loaded
// geometry when one exists; only empty or undersized input reports an error.
func (v *Viewer) Load(data []byte) error {
	logger.Info("loading asset", zap.Int("bytes", len(data)))

	buf, upload, err := v.session.load(data)
	if err != nil {
		return err
	}
	if upload {
		v.upload(buf)
	}
	return nil
}

// LoadFile loads an asset from disk, resolving external buffers relative to
// the file. The degradation policy matches Load.
func (v *Viewer) LoadFile(path string) error {
	logger.Info("loading asset file", zap.String("path", path))

	doc, err := scene.DecodeFile(path)
	if err != nil {
		buf, upload, err := v.session.recover(v.session.state, err)
		if err != nil {
			return err
		}
		if upload {
			v.upload(buf)
		}
		return nil
	}

	buf, upload, err := v.session.loadDocument(doc)
	if err != nil {
		return err
	}
	if upload {
		v.upload(buf)
	}
	return nil
}

// upload rewrites both GPU buffers in full. Clearing and refilling happen
// inside one synchronous call, so callers never observe the transient empty
// state.
func (v *Viewer) upload(buf scene.Buffers) {
	gl.BindVertexArray(v.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	if len(buf.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(buf.Vertices)*4, gl.Ptr(buf.Vertices), gl.STATIC_DRAW)
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, v.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	if len(buf.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.Indices)*2, gl.Ptr(buf.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	v.indexCount = int32(buf.IndexCount)
	logger.Info("geometry uploaded",
		zap.Int("vertices", len(buf.Vertices)/3),
		zap.Uint32("indices", buf.IndexCount),
	)
}

// Render draws the current geometry with the orbit camera. Nothing is drawn
// while no geometry is loaded.
func (v *Viewer) Render() {
	if v.indexCount == 0 {
		return
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(v.program)

	view := v.cam.ViewMatrix()
	mvp := v.projection.Mul(view).Mul(math.Identity())
	gl.UniformMatrix4fv(v.locMVP, 1, false, mvp.Ptr())
	gl.Uniform3f(v.locColor, 0.8, 0.4, 0.2)

	gl.BindVertexArray(v.vao)
	gl.DrawElements(gl.TRIANGLES, v.indexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// Orbit rotates the camera around its target.
func (v *Viewer) Orbit(deltaX, deltaY float32) {
	v.cam.Orbit(deltaX, deltaY)
}

// Resize updates the viewport and the projection's aspect ratio. The view
// matrix and camera position are untouched.
func (v *Viewer) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	v.projection = math.Perspective(fovY, float32(width)/float32(height), nearPlane, farPlane)
	logger.Debug("viewer resized", zap.Int("width", width), zap.Int("height", height))
}

// State returns the current load-orchestration state.
func (v *Viewer) State() State {
	return v.session.state
}

// IndexCount returns the number of indices the next draw will issue.
func (v *Viewer) IndexCount() int32 {
	return v.indexCount
}
