package render

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Jayesh2401/museum/internal/shape"
	"github.com/Jayesh2401/museum/internal/texture"
)

type gpuTexture struct {
	tex     rl.Texture2D
	version int
}

// uploads maps CPU meshes and texture entries to their GPU copies. Meshes are uploaded on
// first draw; textures are re-uploaded whenever the entry's Version moves.
type uploads struct {
	meshes   map[*shape.Mesh]rl.Mesh
	textures map[*texture.Entry]gpuTexture
	white    rl.Texture2D
	hasWhite bool
}

func newUploads() *uploads {
	return &uploads{
		meshes:   make(map[*shape.Mesh]rl.Mesh),
		textures: make(map[*texture.Entry]gpuTexture),
	}
}

// mesh returns the GPU mesh of m, uploading it on first use.
func (u *uploads) mesh(m *shape.Mesh) (rl.Mesh, bool) {
	if m == nil || m.VertexCount() == 0 || len(m.Indices) == 0 {
		return rl.Mesh{}, false
	}
	if g, ok := u.meshes[m]; ok {
		return g, true
	}
	g := rl.Mesh{
		VertexCount:   int32(m.VertexCount()),
		TriangleCount: int32(m.TriangleCount()),
		Vertices:      unsafe.SliceData(m.Positions),
		Texcoords:     unsafe.SliceData(m.UVs),
		Normals:       unsafe.SliceData(m.Normals),
		Indices:       unsafe.SliceData(m.Indices),
	}
	rl.UploadMesh(&g, false)
	u.meshes[m] = g
	return g, true
}

// dropMesh frees the GPU buffers of m.
func (u *uploads) dropMesh(m *shape.Mesh) {
	g, ok := u.meshes[m]
	if !ok {
		return
	}
	delete(u.meshes, m)
	// The vertex arrays belong to the Go mesh; detach them so raylib frees only its buffers.
	g.Vertices, g.Texcoords, g.Normals, g.Indices = nil, nil, nil, nil
	rl.UnloadMesh(&g)
}

// texture returns the GPU texture of e, a white pixel for nil.
func (u *uploads) texture(e *texture.Entry) rl.Texture2D {
	if e == nil || e.Image() == nil {
		return u.whitePixel()
	}
	g, ok := u.textures[e]
	if ok && g.version == e.Version() {
		return g.tex
	}
	if ok {
		rl.UnloadTexture(g.tex)
	}
	img := rl.NewImageFromImage(e.Image())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	u.textures[e] = gpuTexture{tex: tex, version: e.Version()}
	return tex
}

func (u *uploads) whitePixel() rl.Texture2D {
	if !u.hasWhite {
		img := rl.NewImageFromImage(texture.Pixel())
		u.white = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		u.hasWhite = true
	}
	return u.white
}

// dropTexture frees the GPU copy of e.
func (u *uploads) dropTexture(e *texture.Entry) {
	g, ok := u.textures[e]
	if !ok {
		return
	}
	delete(u.textures, e)
	rl.UnloadTexture(g.tex)
}

func (u *uploads) close() {
	for m := range u.meshes {
		u.dropMesh(m)
	}
	for e := range u.textures {
		u.dropTexture(e)
	}
	if u.hasWhite {
		rl.UnloadTexture(u.white)
		u.hasWhite = false
	}
}
