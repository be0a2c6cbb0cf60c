package shapes

// Names the shader pair must declare.
const (
	VertexPositionAttrib = "aVertexPosition"
	ProjectionUniform    = "uPMatrix"
	ModelViewUniform     = "uMVMatrix"
)

// ShaderProgram is a linked, active program and the locations the renderer
// feeds every draw.
type ShaderProgram struct {
	Handle         Program
	VertexPosition Attrib
	Projection     Uniform
	ModelView      Uniform
}

// LinkProgram links a vertex and a fragment shader into a program, makes it
// current and resolves the position attribute and matrix uniforms.
//
// Locations are looked up by fixed name; a missing one is not an error
// beyond what the link step reports.
func LinkProgram(gl GL, vertex, fragment Shader) (*ShaderProgram, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	if !gl.ProgramLinked(program) {
		log := gl.ProgramInfoLog(program)
		gl.DeleteProgram(program)
		return nil, &ShaderError{Source: "program", Log: log, Err: ErrLink}
	}

	// Stages stay attached; deleting them now frees them with the program.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	gl.UseProgram(program)

	sp := &ShaderProgram{
		Handle:         program,
		VertexPosition: gl.GetAttribLocation(program, VertexPositionAttrib),
		Projection:     gl.GetUniformLocation(program, ProjectionUniform),
		ModelView:      gl.GetUniformLocation(program, ModelViewUniform),
	}
	gl.EnableVertexAttribArray(sp.VertexPosition)

	return sp, nil
}
