package renderer

import (
	"fmt"

	"RoomViewer/internal/logger"
	"RoomViewer/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// meshBuffers is the GPU side of one scene.Mesh.
type meshBuffers struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

type OpenGLRenderer struct {
	defaultShader Shader
	meshes        map[scene.MeshID]*meshBuffers
	warned        map[scene.MeshID]bool
}

func NewOpenGLRenderer() *OpenGLRenderer {
	return &OpenGLRenderer{
		meshes: make(map[scene.MeshID]*meshBuffers),
		warned: make(map[scene.MeshID]bool),
	}
}

// Init loads the GL function pointers for the current context and compiles
// the vertex-colour shader. The window's context must be current.
func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Log.Info("OpenGL context", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Viewport(0, 0, width, height)

	rend.defaultShader = InitShader()
	if err := rend.defaultShader.Compile(); err != nil {
		return fmt.Errorf("building default shader: %w", err)
	}
	logger.Log.Info("OpenGL render initialized")
	return nil
}

// Upload creates one VAO/VBO/EBO per mesh. Vertices are interleaved
// position then colour, matching shader locations 0 and 1.
func (rend *OpenGLRenderer) Upload(meshes map[scene.MeshID]scene.Mesh) error {
	for id, mesh := range meshes {
		if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
			return fmt.Errorf("mesh %s has no geometry", id)
		}
		if old, ok := rend.meshes[id]; ok {
			old.delete()
		}

		buffers := &meshBuffers{IndexCount: int32(len(mesh.Indices))}
		gl.GenVertexArrays(1, &buffers.VAO)
		gl.BindVertexArray(buffers.VAO)

		gl.GenBuffers(1, &buffers.VBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, buffers.VBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

		gl.GenBuffers(1, &buffers.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffers.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

		stride := int32(scene.VertexStride * 4)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
		gl.EnableVertexAttribArray(0)

		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
		gl.EnableVertexAttribArray(1)

		gl.BindVertexArray(0)
		rend.meshes[id] = buffers
	}
	logger.Log.Debug("Meshes uploaded", zap.Int("count", len(meshes)))
	return nil
}

func (rend *OpenGLRenderer) Render(frame *Frame) {
	c := frame.ClearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	shader := &rend.defaultShader
	shader.Use()
	shader.SetMat4("view", frame.View)
	shader.SetMat4("projection", frame.Projection)

	for _, draw := range frame.Draws {
		buffers, ok := rend.meshes[draw.Mesh]
		if !ok {
			if !rend.warned[draw.Mesh] {
				logger.Log.Warn("Draw references a mesh that was never uploaded", zap.Stringer("mesh", draw.Mesh))
				rend.warned[draw.Mesh] = true
			}
			continue
		}
		shader.SetMat4("model", draw.Model)
		gl.BindVertexArray(buffers.VAO)
		gl.DrawElements(gl.TRIANGLES, buffers.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	}
	gl.BindVertexArray(0)
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Cleanup() {
	for id, buffers := range rend.meshes {
		buffers.delete()
		delete(rend.meshes, id)
	}
	rend.defaultShader.Delete()
	logger.Log.Debug("OpenGL resources released")
}

func (b *meshBuffers) delete() {
	gl.DeleteVertexArrays(1, &b.VAO)
	gl.DeleteBuffers(1, &b.VBO)
	gl.DeleteBuffers(1, &b.EBO)
}
