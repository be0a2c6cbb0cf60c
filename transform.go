package shapes

import "github.com/go-gl/mathgl/mgl32"

// Perspective parameters of the projection matrix.
const (
	FieldOfView = 45.0 // degrees, vertical
	NearPlane   = 0.1
	FarPlane    = 100.0
)

// Projection returns the perspective projection for a surface of the given
// pixel size.
func Projection(width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}

// ModelViews returns the model-view matrix in effect when each mesh is drawn.
// Offsets compose: every mesh starts from where the previous one was placed.
func ModelViews(meshes []Mesh) []mgl32.Mat4 {
	out := make([]mgl32.Mat4, len(meshes))
	mv := mgl32.Ident4()
	for i, m := range meshes {
		mv = translate(mv, m.Offset)
		out[i] = mv
	}
	return out
}

// translate right-multiplies mv by a translation.
func translate(mv mgl32.Mat4, v mgl32.Vec3) mgl32.Mat4 {
	return mv.Mul4(mgl32.Translate3D(v.X(), v.Y(), v.Z()))
}
