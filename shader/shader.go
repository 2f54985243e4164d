package shader

// ─────────────────────────────── Textured quads ────────────────────────────────

// Positions are 2D, multiplied as a row vector by the "matrix" uniform.
const quadVertexShaderSource = `#version 330 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec3 aColor;
layout(location = 2) in vec2 in_tex_coords;
out vec4 color;
out vec2 tex_coords;
uniform mat4 matrix;
void main()
{
	gl_Position = vec4(aPos, 0.0f, 1.0f) * matrix;
	color = vec4(aColor, 1.0);
	tex_coords = in_tex_coords;
}
`

const quadFragmentShaderSource = `#version 330 core
out vec4 FragColor;
in vec4 color;
in vec2 tex_coords;
uniform sampler2D texture_data;
void main()
{
	FragColor = texture(texture_data, tex_coords) * color;
}
`

// Uniform and attribute names shared with the host code.
const (
	MatrixUniform    = "matrix"
	TextureUniform   = "texture_data"
	PositionAttrib   = "aPos"
	ColorAttrib      = "aColor"
	TexCoordAttrib   = "in_tex_coords"
	TexCoordVarying  = "tex_coords"
	PositionLocation = 0
	ColorLocation    = 1
	TexCoordLocation = 2
)

// ────────────────────────────────── Public API ─────────────────────────────────

func GetQuadVertexShader() string {
	return quadVertexShaderSource
}

func GetQuadFragmentShader() string {
	return quadFragmentShaderSource
}
