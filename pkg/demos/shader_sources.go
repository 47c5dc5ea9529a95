package demos

// Shader sources for the demo scenes

// Vertex shader for per-vertex colored meshes
const colorVertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 vertexColor;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
    vertexColor = aColor;
}
`

// Fragment shader for colored meshes; brightness scales the vertex color
const colorFragmentShader = `
#version 410 core
in vec3 vertexColor;
out vec4 FragColor;

uniform float brightness;

void main() {
    FragColor = vec4(vertexColor * brightness, 1.0);
}
`

// Vertex shader that waves a flag hanging from a pole at x=0. Displacement
// is damped by x so the edge at the pole stays put.
const flagVertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;
uniform float time;

void main() {
    vec3 pos = aPos;
    float x = aPos.x;
    float y = aPos.y;
    float t = time;

    // Travelling waves
    float mainWave = sin(x * 6.0 - t * 3.0) * 0.5 +
                     sin(x * 12.0 - t * 6.0) * 0.25;

    // Diagonal shear
    float diagonal = sin((x + y * 0.8) * 10.0 - t * 4.5) * 0.2;

    // High frequency flutter
    float flutter = sin((x * 25.0 + y * 15.0) - t * 10.0) * 0.08;

    // Stiff near the pole
    float damp = pow(clamp(x, 0.0, 1.0), 1.7);

    float wave = (mainWave + diagonal + flutter) * damp;
    pos.z += wave * 0.35;
    pos.y += sin(x * 5.0 - t * 2.5) * 0.03 * damp;

    gl_Position = projection * view * model * vec4(pos, 1.0);
    TexCoord = aTexCoord;
}
`

// Fragment shader for textured meshes
const textureFragmentShader = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D flagTexture;

void main() {
    FragColor = texture(flagTexture, TexCoord);
}
`
