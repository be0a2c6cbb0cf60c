package shapes

import "fmt"

// Shader type tags as written on <script type="..."> elements.
const (
	VertexTag   = "x-shader/x-vertex"
	FragmentTag = "x-shader/x-fragment"
)

// ShaderSource is one shader text block read from the host page.
type ShaderSource struct {
	ID   string // element id
	Type string // type tag, e.g. x-shader/x-vertex
	Text string
}

// SourceProvider looks up shader text blocks by element id.
type SourceProvider interface {
	ShaderSource(id string) (ShaderSource, error)
}

// ShaderKindFromTag maps a type tag to the shader stage it declares.
func ShaderKindFromTag(tag string) (ShaderKind, error) {
	switch tag {
	case VertexTag:
		return VertexShader, nil
	case FragmentTag:
		return FragmentShader, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownShaderKind, tag)
	}
}

// LoadShader compiles src into a new shader object.
// The shader is deleted again if compilation fails.
func LoadShader(gl GL, src ShaderSource) (Shader, error) {
	kind, err := ShaderKindFromTag(src.Type)
	if err != nil {
		return 0, &ShaderError{Source: src.ID, Tag: src.Type, Err: ErrUnknownShaderKind}
	}

	shader := gl.CreateShader(kind)
	gl.ShaderSource(shader, src.Text)
	gl.CompileShader(shader)

	if !gl.ShaderCompiled(shader) {
		log := gl.ShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, &ShaderError{Source: src.ID, Tag: src.Type, Log: log, Err: ErrCompile}
	}

	return shader, nil
}

// loadShaderByID fetches a source from sources and compiles it.
func loadShaderByID(gl GL, sources SourceProvider, id string) (Shader, error) {
	src, err := sources.ShaderSource(id)
	if err != nil {
		return 0, fmt.Errorf("shader source %q: %w", id, err)
	}
	if src.ID == "" {
		src.ID = id
	}
	return LoadShader(gl, src)
}
