package material

// Program returns the vertex and fragment sources of k. Mesh kinds share surfaceVS; sprites
// use the batch-compatible spriteVS. Outlines are drawn as lines and have no program.
func Program(k Kind) (vs, fs string, ok bool) {
	if k.Sprite() {
		return spriteVS, spriteFS, true
	}
	fs, ok = fragments[k]
	return surfaceVS, fs, ok
}

var fragments = map[Kind]string{
	KindImage:     imageFS,
	KindArtifact:  artifactFS,
	KindWater:     waterFS,
	KindGlow:      glowFS,
	KindGlass:     glassFS,
	KindPortal:    portalFS,
	KindDisk:      diskFS,
	KindLit:       litFS,
	KindFloorGrid: floorGridFS,
}

// glslNoise is the lattice value noise and 4-octave fbm shared by the portal and disk programs.
// Noise and Fbm mirror it on the CPU.
const glslNoise = `
float hash(vec2 p) {
  p = fract(p * vec2(123.34, 456.21));
  p += dot(p, p + 45.32);
  return fract(p.x * p.y);
}
float noise(vec2 p) {
  vec2 i = floor(p);
  vec2 f = fract(p);
  float a = hash(i);
  float b = hash(i + vec2(1.0, 0.0));
  float c = hash(i + vec2(0.0, 1.0));
  float d = hash(i + vec2(1.0, 1.0));
  vec2 u = f * f * (3.0 - 2.0 * f);
  return mix(a, b, u.x) + (c - a) * u.y * (1.0 - u.x) + (d - b) * u.x * u.y;
}
float fbm(vec2 p) {
  float value = 0.0;
  float amp = 0.55;
  for (int i = 0; i < 4; i++) {
    value += amp * noise(p);
    p *= 2.06;
    amp *= 0.5;
  }
  return value;
}
`

// fragHeader declares the surfaceVS outputs. uv flips the mesh coordinates (v = 0 at the top)
// into the y-up frame the procedural math is written in.
const fragHeader = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
out vec4 finalColor;
vec2 upUv() { return vec2(fragTexCoord.x, 1.0 - fragTexCoord.y); }
vec4 sampleUp(sampler2D tex, vec2 st) { return texture(tex, vec2(st.x, 1.0 - st.y)); }
`

const (
	surfaceVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform float time;
uniform float waveStrength;
uniform float waveSway;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec3 pos = vertexPosition;
  vec2 uv = vec2(vertexTexCoord.x, 1.0 - vertexTexCoord.y);
  if (waveStrength > 0.0) {
    float band = sin(uv.y * 22.0 + uv.x * 6.0 + time * 2.0);
    float ripple = sin(uv.x * 40.0 - time * 3.2) * 0.5 + 0.5;
    pos.z += band * ripple * waveStrength;
    pos.x += sin(uv.y * 8.0 + time * 1.4) * waveSway;
  }
  vec4 worldPos = matModel * vec4(pos, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`

	imageFS = fragHeader + `
uniform sampler2D texture0;
uniform vec3 tint;
uniform vec2 repeat;
uniform vec2 offset;
uniform float opacity;
void main() {
  vec4 tex = sampleUp(texture0, upUv() * repeat + offset);
  finalColor = vec4(tex.rgb * tint, tex.a * opacity);
}
`

	artifactFS = fragHeader + `
uniform sampler2D texture0;
uniform vec2 repeat;
uniform vec2 offset;
uniform float time;
uniform float hover;
uniform float focus;
uniform float opacity;
uniform vec2 pointer;
void main() {
  vec2 uv = upUv();
  vec2 hoverOffset = vec2(sin(uv.y * 18.0 + time * 2.2), cos(uv.x * 24.0 - time * 2.8)) * (0.01 + hover * 0.022);
  vec3 color = sampleUp(texture0, (uv + hoverOffset + pointer * 0.006) * repeat + offset).rgb;
  color = (color - 0.5) * (1.12 + focus * 0.2) + 0.5;
  float caustic = sin((uv.x + uv.y + time * 0.65) * 60.0);
  caustic += sin((uv.x * 1.8 - uv.y + time * 0.48) * 46.0);
  caustic = caustic * 0.04 + 0.04;
  float edge = smoothstep(0.0, 0.24, uv.x) * smoothstep(0.0, 0.24, 1.0 - uv.x);
  edge *= smoothstep(0.0, 0.14, uv.y);
  vec2 glossCenter = vec2(0.45 + pointer.x * 0.08, 0.78 + pointer.y * 0.05);
  float gloss = exp(-dot(uv - glossCenter, uv - glossCenter) * 30.0) * (0.1 + hover * 0.28);
  color += caustic * (0.4 + hover * 0.9);
  color += gloss;
  color += edge * (0.05 + focus * 0.1);
  finalColor = vec4(color, opacity);
}
`

	waterFS = fragHeader + `
uniform sampler2D texture0;
uniform float time;
uniform float strength;
uniform float speed;
uniform float opacity;
uniform vec2 repeat;
uniform vec2 offset;
uniform float hover;
uniform vec2 hoverUv;
uniform vec3 hoverColor;
float whash(vec2 p) {
  return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453123);
}
float wnoise(vec2 p) {
  vec2 i = floor(p);
  vec2 f = fract(p);
  float a = whash(i);
  float b = whash(i + vec2(1.0, 0.0));
  float c = whash(i + vec2(0.0, 1.0));
  float d = whash(i + vec2(1.0, 1.0));
  vec2 u = f * f * (3.0 - 2.0 * f);
  return mix(a, b, u.x) + (c - a) * u.y * (1.0 - u.x) + (d - b) * u.x * u.y;
}
void main() {
  vec2 uv = upUv() * repeat + offset;
  float t = time * speed;
  uv.x += sin((uv.y + t * 0.7) * 28.0) * 0.012 * strength;
  uv.y += cos((uv.x - t * 0.6) * 24.0) * 0.010 * strength;
  vec3 base = sampleUp(texture0, uv).rgb;
  float shimmer = sin((uv.x + uv.y + t) * 36.0) * 0.08 * strength;
  float alphaMask = smoothstep(0.0, 0.2, uv.x) * smoothstep(1.0, 0.8, uv.x) * smoothstep(0.0, 0.2, uv.y) * smoothstep(1.0, 0.8, uv.y);
  vec3 water = base + vec3(0.10, 0.16, 0.22) + shimmer;
  float hoverRadius = 0.16 + strength * 0.07;
  float hoverMask = smoothstep(hoverRadius, 0.0, length(uv - hoverUv)) * hover;
  float smoke = wnoise(uv * 12.0 + vec2(t * 0.8, -t * 0.45));
  smoke += wnoise(uv * 22.0 - vec2(t * 0.55, t * 0.3)) * 0.45;
  smoke *= hoverMask;
  vec3 hoverMix = mix(water, hoverColor, hoverMask * 0.55);
  vec3 smokeColor = vec3(0.22, 0.26, 0.34) + hoverColor * 0.2;
  finalColor = vec4(mix(hoverMix, smokeColor, clamp(smoke * 0.55, 0.0, 0.6)), opacity * alphaMask);
}
`

	glowFS = fragHeader + `
uniform vec3 glowColor;
uniform float strength;
void main() {
  vec2 d = abs(upUv() - 0.5) * 2.0;
  float edge = max(d.x, d.y);
  float ring = smoothstep(0.55, 0.98, edge);
  float core = smoothstep(0.86, 1.0, edge);
  finalColor = vec4(glowColor, (ring * 0.35 + core * 0.65) * strength);
}
`

	glassFS = fragHeader + `
uniform vec3 tint;
uniform float opacity;
uniform float roughness;
uniform float transmission;
uniform float f0;
uniform float thickness;
uniform vec3 viewPos;
const vec3 keyDir = vec3(0.3244, 0.8111, 0.4867);
void main() {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  float cosT = abs(dot(N, V));
  float fresnel = f0 + (1.0 - f0) * pow(1.0 - cosT, 5.0);
  float absorb = exp(-thickness * (1.0 - transmission) * 1.5);
  vec3 body = tint * mix(1.0, absorb, 0.6);
  vec3 H = normalize(keyDir + V);
  float spec = pow(abs(dot(N, H)), mix(180.0, 8.0, roughness)) * (1.0 - roughness);
  vec3 color = body + fresnel * vec3(0.9, 0.95, 1.0) + spec;
  float alpha = opacity * (1.0 + (1.0 - transmission) * 2.0) + fresnel * 0.35 + spec * 0.5;
  finalColor = vec4(color, clamp(alpha, 0.0, 1.0));
}
`

	portalFS = fragHeader + glslNoise + `
uniform float time;
uniform vec3 innerColor;
uniform vec3 outerColor;
uniform float coreStrength;
uniform float ringStrength;
uniform float noiseScale;
uniform float flowSpeed;
uniform float opacity;
void main() {
  vec2 centered = (upUv() - 0.5) * 2.0;
  float t = time * flowSpeed;
  float dist = length(centered);
  float angle = atan(centered.y, centered.x);
  vec2 flowUv = centered * noiseScale;
  flowUv += vec2(cos(angle * 2.0 + t * 0.9), sin(angle * 1.7 - t * 0.75)) * 0.85;
  float nA = fbm(flowUv + t * 0.75);
  float nB = fbm(flowUv * 1.35 - t * 0.92);
  float flow = nA * 0.7 + nB * 0.5;
  float core = smoothstep(0.98, 0.08, dist + flow * 0.12);
  float ring = smoothstep(0.94, 0.7, dist) * smoothstep(0.26, 0.64, dist + flow * 0.08);
  float arc = smoothstep(0.78, 1.0, sin((angle + flow * 3.5 + t * 1.8) * 6.0) * 0.5 + 0.5);
  float sparks = smoothstep(0.58, 0.96, flow) * smoothstep(0.45, 0.84, dist);
  float alpha = clamp(core * 0.9 + ring * 0.8 + sparks * 0.35, 0.0, 1.0);
  vec3 energy = mix(innerColor, outerColor, clamp(dist * 1.25 + flow * 0.2, 0.0, 1.0));
  energy *= core * coreStrength + ring * ringStrength + arc * 0.38 + sparks * 0.22;
  finalColor = vec4(energy, alpha * (0.35 + core * 0.85) * opacity);
}
`

	diskFS = fragHeader + glslNoise + `
uniform float time;
uniform vec3 colorA;
uniform vec3 colorB;
uniform float holeSize;
uniform float ringRadius;
uniform float spin;
uniform float glow;
void main() {
  vec2 p = (upUv() - 0.5) * 2.0;
  float dist = length(p);
  float angle = atan(p.y, p.x);
  float t = time * spin;
  float swirl = noise(vec2(dist * 18.0 - t * 2.8, angle * 4.8 + t * 2.0));
  float streaks = sin(angle * 24.0 - dist * 38.0 - t * 12.0) * 0.5 + 0.5;
  float diskBand = exp(-pow((dist - ringRadius) * 10.0, 2.0));
  float glowBand = exp(-pow((dist - (ringRadius + 0.07)) * 8.0, 2.0));
  float coreMask = smoothstep(holeSize + 0.05, holeSize, dist);
  float horizonEdge = smoothstep(holeSize + 0.09, holeSize + 0.015, dist);
  vec3 ember = mix(colorA, colorB, clamp(swirl * 0.9 + streaks * 0.45, 0.0, 1.0));
  float total = (diskBand * (0.42 + swirl * 0.8 + streaks * 0.45) + glowBand * (0.35 + streaks * 0.55) * 0.8) * glow;
  vec3 color = mix(ember * total, vec3(0.0), coreMask) * horizonEdge;
  float alpha = clamp((diskBand * 0.95 + glowBand * 0.55) * glow * horizonEdge, 0.0, 1.0);
  finalColor = vec4(color, alpha);
}
`

	litFS = fragHeader + `
uniform vec4 baseColor;
uniform float metalness;
uniform float roughness;
uniform float hemiIntensity;
uniform float keyIntensity;
uniform float rimIntensity;
uniform vec3 viewPos;
uniform sampler2D texture0;
uniform float textureMix;
uniform float emissive;
const vec3 skyColor = vec3(0.93, 0.95, 1.0);
const vec3 groundColor = vec3(0.55, 0.55, 0.62);
const vec3 keyDir = vec3(0.3244, 0.8111, 0.4867);
void main() {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  if (dot(N, V) < 0.0) N = -N;
  vec3 tex = texture(texture0, fragTexCoord).rgb;
  vec3 albedo = baseColor.rgb * mix(vec3(1.0), tex, textureMix);
  vec3 ambient = mix(groundColor, skyColor, 0.5 + 0.5 * N.y) * hemiIntensity;
  float ndl = max(dot(N, keyDir), 0.0);
  vec3 H = normalize(keyDir + V);
  float spec = pow(max(dot(N, H), 0.0), mix(96.0, 4.0, roughness)) * (1.0 - roughness) * mix(0.04, 1.0, metalness);
  float rim = pow(1.0 - max(dot(N, V), 0.0), 3.0) * rimIntensity;
  vec3 diffuse = albedo * (1.0 - metalness * 0.5);
  vec3 color = diffuse * (ambient + ndl * keyIntensity) + spec * keyIntensity + rim * vec3(0.6, 0.7, 1.0) + albedo * emissive;
  finalColor = vec4(color, baseColor.a);
}
`

	floorGridFS = fragHeader + `
uniform float time;
void main() {
  vec2 uv = upUv();
  float gridX = abs(fract(uv.x * 50.0 + time * 0.08) - 0.5);
  float gridY = abs(fract(uv.y * 38.0) - 0.5);
  float line = smoothstep(0.46, 0.5, max(gridX, gridY));
  vec3 base = mix(vec3(0.81, 0.84, 0.9), vec3(0.63, 0.68, 0.79), uv.y);
  base += line * 0.07;
  float vignette = smoothstep(0.95, 0.2, distance(uv, vec2(0.5, 0.3)));
  base *= 0.86 + vignette * 0.18;
  finalColor = vec4(base, 0.72);
}
`

	// spriteVS matches raylib's batch layout so billboards drawn inside BeginShaderMode use it.
	spriteVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;
uniform mat4 mvp;
out vec2 fragTexCoord;
out vec4 fragColor;
void main() {
  fragTexCoord = vertexTexCoord;
  fragColor = vertexColor;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

	spriteFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
uniform sampler2D texture0;
uniform float opacity;
out vec4 finalColor;
void main() {
  vec4 tex = texture(texture0, fragTexCoord);
  float a = tex.a * fragColor.a * opacity;
  if (a < 0.01) discard;
  finalColor = vec4(tex.rgb * fragColor.rgb, a);
}
`
)
