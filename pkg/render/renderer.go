// Package render is the contract between demo scenes and the GPU backend.
package render

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"gldemos/pkg/mesh"
)

// ProgramID identifies a linked shader program
type ProgramID uint32

// MeshID identifies an uploaded vertex buffer
type MeshID uint32

// TextureID identifies an uploaded 2D texture
type TextureID uint32

// Renderer defines the drawing operations available to demos
type Renderer interface {
	// CompileProgram compiles and links a vertex/fragment shader pair
	CompileProgram(vertexSource, fragmentSource string) (ProgramID, error)

	// UseProgram makes p current for subsequent uniform and draw calls
	UseProgram(p ProgramID)

	// Uniform setters act on the current program. Unknown names are ignored.
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)

	// UploadMesh copies interleaved vertices to the GPU
	UploadMesh(vertices []float32, layout mesh.Layout) (MeshID, error)

	// UploadTexture copies an RGBA image to the GPU with mipmaps
	UploadTexture(img *image.RGBA) (TextureID, error)

	// BindTexture binds t to the given texture unit
	BindTexture(unit uint32, t TextureID)

	// DrawMesh draws all triangles of m
	DrawMesh(m MeshID)

	// Clear clears color and depth
	Clear(color mgl32.Vec4)

	// Viewport sets the drawable area in framebuffer pixels
	Viewport(width, height int)

	// Close releases every GPU object the renderer created
	Close()
}
