package scene

import "fmt"

// StarsVertexShader passes the full-screen quad through in clip space.
const StarsVertexShader = `
#version 410 core
in vec4 vertexPosition;

out vec2 screenPos;

void main() {
    screenPos = vertexPosition.xy;
    gl_Position = vec4(vertexPosition.xy, 0.0, 1.0);
}
`

// StarsFragmentShader turns each pixel into a world-space view ray through
// the same frustum as the planet, hashes it into a sparse starfield and adds
// the sun along the light direction.
const StarsFragmentShader = `
#version 410 core
in vec2 screenPos;
out vec4 outColor;

uniform mat4 viewDirectionMatrix;
uniform mat4 lightDirectionMatrix;
uniform vec2 viewRayScale;

float hash(vec3 p) {
    p = fract(p * 0.3183099 + 0.1);
    p *= 17.0;
    return fract(p.x * p.y * p.z * (p.x + p.y + p.z));
}

void main() {
    vec3 ray = normalize(vec3(screenPos * viewRayScale, -1.0));
    // rotation only, so the inverse is the transpose
    vec3 dir = transpose(mat3(viewDirectionMatrix)) * ray;

    float h = hash(floor(dir * 180.0));
    float star = step(0.997, h) * (h - 0.997) / 0.003;

    vec3 sun = normalize((lightDirectionMatrix * vec4(0.0, 0.0, 1.0, 0.0)).xyz);
    float d = max(dot(dir, sun), 0.0);
    vec3 glow = vec3(1.0, 0.9, 0.7) * (pow(d, 2000.0) * 4.0 + pow(d, 40.0) * 0.15);

    outColor = vec4(vec3(star) + glow, 1.0);
}
`

const torusVertexTemplate = `
#version 410 core
#define LARGE_RADIUS %.6f
#define SMALL_RADIUS %.6f
#define RELIEF %.6f
#define MAX_OCTAVES 24

const float TAU = 6.28318530718;
const float SEA_LEVEL = 140.0 / 256.0;

in vec4 vertexPosition;

uniform mat4 projectionMatrix;
uniform mat4 viewMatrix;
uniform float terrainResolution;
uniform float terrainHeightScale;
uniform float terrainNormalResolution;

out vec3 surfaceNormal;
out float altitude;

float hash(vec3 p) {
    p = fract(p * 0.3183099 + 0.1);
    p *= 17.0;
    return fract(p.x * p.y * p.z * (p.x + p.y + p.z));
}

float valueNoise(vec3 p) {
    vec3 i = floor(p);
    vec3 f = fract(p);
    f = f * f * (3.0 - 2.0 * f);

    return mix(
        mix(mix(hash(i + vec3(0, 0, 0)), hash(i + vec3(1, 0, 0)), f.x),
            mix(hash(i + vec3(0, 1, 0)), hash(i + vec3(1, 1, 0)), f.x), f.y),
        mix(mix(hash(i + vec3(0, 0, 1)), hash(i + vec3(1, 0, 1)), f.x),
            mix(hash(i + vec3(0, 1, 1)), hash(i + vec3(1, 1, 1)), f.x), f.y),
        f.z);
}

// Octave amplitudes halve until they drop to terrainResolution; the same
// cut-off produces terrainHeightScale, which maps the sum back to [0, 1].
float terrain(vec3 p) {
    float height = 0.0;
    float amplitude = 0.5;
    float frequency = 1.0;
    for (int i = 0; i < MAX_OCTAVES; i++) {
        height += amplitude * valueNoise(p * frequency);
        amplitude *= 0.5;
        frequency *= 2.0;
        if (amplitude <= terrainResolution) {
            break;
        }
    }
    return height * terrainHeightScale;
}

vec3 torusPoint(vec2 uv) {
    float theta = uv.x * TAU;
    float phi = uv.y * TAU;
    float ring = LARGE_RADIUS + SMALL_RADIUS * cos(phi);
    return vec3(ring * cos(theta), SMALL_RADIUS * sin(phi), ring * sin(theta));
}

vec3 torusNormal(vec2 uv) {
    float theta = uv.x * TAU;
    float phi = uv.y * TAU;
    return vec3(cos(phi) * cos(theta), sin(phi), cos(phi) * sin(theta));
}

vec3 surface(vec2 uv, out float h) {
    vec3 base = torusPoint(uv);
    h = terrain(base * (2.0 / SMALL_RADIUS));
    return base + torusNormal(uv) * (max(h, SEA_LEVEL) - SEA_LEVEL) * RELIEF * SMALL_RADIUS;
}

void main() {
    vec2 uv = vertexPosition.xy;
    float e = terrainNormalResolution;

    float h, hu, hv;
    vec3 p = surface(uv, h);
    vec3 pu = surface(uv + vec2(e, 0.0), hu);
    vec3 pv = surface(uv + vec2(0.0, e), hv);

    surfaceNormal = normalize(cross(pv - p, pu - p));
    altitude = h;
    gl_Position = projectionMatrix * viewMatrix * vec4(p, 1.0);
}
`

// TorusFragmentShader colours the terrain in altitude bands (sea, land
// shading from dark to light green, snow) and lights it with the sun.
const TorusFragmentShader = `
#version 410 core
in vec3 surfaceNormal;
in float altitude;
out vec4 outColor;

uniform vec4 lightDirection;
uniform float lightAmbience;
uniform float zoomLevel;

const float SEA_LEVEL = 140.0 / 256.0;
const float SNOW_LINE = 190.0 / 256.0;
const float GREEN_RANGE = 150.0 / 256.0;

void main() {
    vec3 n = normalize(surfaceNormal);
    float diffuse = max(dot(n, -normalize(lightDirection.xyz)), 0.0);

    vec3 base;
    if (altitude < SEA_LEVEL) {
        base = vec3(0.0, 0.0, altitude);
    } else if (altitude < SNOW_LINE) {
        float g = (altitude - SEA_LEVEL) / (SNOW_LINE - SEA_LEVEL) * GREEN_RANGE + GREEN_RANGE * 0.5;
        base = vec3(0.0, g, 0.0);
    } else {
        base = vec3(altitude);
    }

    vec3 color = base * (lightAmbience + (1.0 - lightAmbience) * diffuse);

    // thin blue haze that thickens as the camera backs away
    float haze = 0.15 * clamp(zoomLevel / 8.0, 0.0, 1.0);
    color = mix(color, vec3(0.4, 0.6, 1.0) * (lightAmbience + diffuse), haze);

    outColor = vec4(color, 1.0);
}
`

// DefaultRelief is the terrain height range as a fraction of the tube radius.
const DefaultRelief = 0.08

// TorusVertexShader returns the planet vertex shader with the torus radii
// compiled in.
func TorusVertexShader(t Torus, relief float32) string {
	return fmt.Sprintf(torusVertexTemplate, t.LargeRadius, t.SmallRadius, relief)
}
