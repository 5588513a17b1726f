package asr

// DefaultVertexShader and DefaultFragmentShader are the programs behind
// DefaultMaterial. TEXTURING_MODE_* match the TexturingMode values.
const DefaultVertexShader = `
#version 410 core

in vec4 position;
in vec4 color;
in vec4 texture_coordinates;

uniform bool texture_enabled;
uniform mat4 texture_transformation_matrix;
uniform mat4 model_view_projection_matrix;
uniform float point_size;

out vec4 fragment_color;
out vec2 fragment_texture_coordinates;

void main()
{
    fragment_color = color;
    if (texture_enabled) {
        vec4 transformed = texture_transformation_matrix * vec4(texture_coordinates.st, 0.0, 1.0);
        fragment_texture_coordinates = transformed.st;
    }

    gl_Position = model_view_projection_matrix * position;
    gl_PointSize = point_size;
}
`

const DefaultFragmentShader = `
#version 410 core

#define TEXTURING_MODE_ADDITION            0
#define TEXTURING_MODE_SUBTRACTION         1
#define TEXTURING_MODE_REVERSE_SUBTRACTION 2
#define TEXTURING_MODE_MODULATION          3
#define TEXTURING_MODE_DECALING            4

uniform bool texture_enabled;
uniform int texturing_mode;
uniform sampler2D texture_sampler;

in vec4 fragment_color;
in vec2 fragment_texture_coordinates;

out vec4 frag_color;

void main()
{
    frag_color = fragment_color;

    if (texture_enabled) {
        vec4 texel = texture(texture_sampler, fragment_texture_coordinates);
        if (texturing_mode == TEXTURING_MODE_ADDITION) {
            frag_color += texel;
        } else if (texturing_mode == TEXTURING_MODE_MODULATION) {
            frag_color *= texel;
        } else if (texturing_mode == TEXTURING_MODE_DECALING) {
            frag_color.rgb = mix(frag_color.rgb, texel.rgb, texel.a);
        } else if (texturing_mode == TEXTURING_MODE_SUBTRACTION) {
            frag_color -= texel;
        } else if (texturing_mode == TEXTURING_MODE_REVERSE_SUBTRACTION) {
            frag_color = texel - frag_color;
        }
    }
}
`
