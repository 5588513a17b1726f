package asr

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/asr/geometry"
	"github.com/pkg/errors"
)

// Uniform names the bundled shaders understand. A custom program may declare
// any subset of them.
const (
	ModelViewProjectionUniform   = "model_view_projection_matrix"
	TextureEnabledUniform        = "texture_enabled"
	TexturingModeUniform         = "texturing_mode"
	TextureTransformationUniform = "texture_transformation_matrix"
	TextureSamplerUniform        = "texture_sampler"
	TimeUniform                  = "time"
	PointSizeUniform             = "point_size"
)

// RenderState is the fixed function state applied when a material is used.
type RenderState struct {
	DepthTest bool
	CullFaces bool
	Blending  bool
	LineWidth float32
	PointSize float32
}

func DefaultRenderState() RenderState {
	return RenderState{DepthTest: true, CullFaces: true, LineWidth: 1, PointSize: 10}
}

// Material is a linked shader program with its resolved locations and the
// render state it draws with.
type Material struct {
	Program uint32
	State   RenderState

	attributes map[string]int32
	uniforms   map[string]int32
}

func NewMaterial(vertexShaderSource, fragmentShaderSource string) (*Material, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	m := &Material{
		Program:    program,
		State:      DefaultRenderState(),
		attributes: make(map[string]int32),
		uniforms:   make(map[string]int32),
	}
	for _, name := range []string{
		geometry.PositionAttribute,
		geometry.NormalAttribute,
		geometry.ColorAttribute,
		geometry.UVAttribute,
	} {
		m.attributes[name] = gl.GetAttribLocation(program, gl.Str(name+"\x00"))
	}
	for _, name := range []string{
		ModelViewProjectionUniform,
		TextureEnabledUniform,
		TexturingModeUniform,
		TextureTransformationUniform,
		TextureSamplerUniform,
		TimeUniform,
		PointSizeUniform,
	} {
		m.uniforms[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}
	return m, nil
}

// DefaultMaterial compiles the bundled shaders: per vertex color, optionally
// combined with a texture through one of the texturing modes.
func DefaultMaterial() (*Material, error) {
	return NewMaterial(DefaultVertexShader, DefaultFragmentShader)
}

// AttributeLocation returns -1 when the program does not use the attribute.
func (m *Material) AttributeLocation(name string) int32 {
	if loc, ok := m.attributes[name]; ok {
		return loc
	}
	return -1
}

func (m *Material) UniformLocation(name string) int32 {
	if loc, ok := m.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (m *Material) use() {
	gl.UseProgram(m.Program)
	enable(gl.DEPTH_TEST, m.State.DepthTest)
	enable(gl.CULL_FACE, m.State.CullFaces)
	if m.State.CullFaces {
		gl.CullFace(gl.BACK)
	}
	enable(gl.BLEND, m.State.Blending)
	if m.State.Blending {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	if m.State.LineWidth > 0 {
		gl.LineWidth(m.State.LineWidth)
	}
	m.setFloat(PointSizeUniform, m.State.PointSize)
}

func (m *Material) setMat4(name string, v mgl32.Mat4) {
	if loc := m.UniformLocation(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

func (m *Material) setFloat(name string, v float32) {
	if loc := m.UniformLocation(name); loc != -1 {
		gl.Uniform1f(loc, v)
	}
}

func (m *Material) setInt(name string, v int32) {
	if loc := m.UniformLocation(name); loc != -1 {
		gl.Uniform1i(loc, v)
	}
}

func (m *Material) Delete() {
	gl.DeleteProgram(m.Program)
	m.Program = 0
}

func enable(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, errors.Wrap(err, "fragment shader")
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, errors.Errorf("failed to link program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("failed to compile: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
