package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// blurShaderSource builds a 9-tap Gaussian blur Kage shader that samples
// along axis ("vec2(1*Sigma, 0)" for horizontal, "vec2(0, 1*Sigma)" for
// vertical) — the two directions are the same kernel, only the sample
// offset differs.
func blurShaderSource(axis string) []byte {
	weights := [9]float64{0.0162, 0.0540, 0.1218, 0.1954, 0.2252, 0.1954, 0.1218, 0.0540, 0.0162}
	src := "//kage:unit pixels\n\npackage main\n\nvar Sigma float\n\n" +
		"func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {\n\tvar result vec4\n"
	for i, w := range weights {
		tap := i - 4
		src += fmt.Sprintf("\tresult += imageSrc0At(srcPos + %s) * %v\n", offset(axis, tap), w)
	}
	src += "\treturn result\n}\n"
	return []byte(src)
}

func offset(axis string, tap int) string {
	if axis == "x" {
		return fmt.Sprintf("vec2(%d*Sigma, 0)", tap)
	}
	return fmt.Sprintf("vec2(0, %d*Sigma)", tap)
}

// liquidGlassShader refracts the blurred background with a slow sine wave
// and mixes in a tint color, the "liquid glass" look used by modal panels.
var liquidGlassShader = []byte(`
//kage:unit pixels

package main

var Time float
var TintR float
var TintG float
var TintB float
var TintA float
var RefractionStrength float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    distortion := vec2(
        sin(srcPos.y * 0.03 + Time * 1.5) * RefractionStrength,
        cos(srcPos.x * 0.03 + Time * 1.2) * RefractionStrength * 0.7,
    )
    blurred := imageSrc0At(srcPos + distortion)
    tint := vec4(TintR, TintG, TintB, TintA)
    return mix(blurred, vec4(tint.rgb, 1.0), tint.a)
}
`)

// GlassEffect renders a blurred, refracted, tinted backdrop behind modal
// panels. Falls back to a flat tinted rectangle if shader compilation
// fails on the current GPU backend.
type GlassEffect struct {
	blurH, blurV, glass *ebiten.Shader
	tempH, tempV        *ebiten.Image
	time                float64
	enabled             bool
}

// NewGlassEffect compiles the glass shaders, disabling the effect (falling
// back to a flat overlay) if any of them fails to compile.
func NewGlassEffect() *GlassEffect {
	ge := &GlassEffect{enabled: true}

	shaders := []struct {
		src  []byte
		dest **ebiten.Shader
	}{
		{blurShaderSource("x"), &ge.blurH},
		{blurShaderSource("y"), &ge.blurV},
		{liquidGlassShader, &ge.glass},
	}
	for _, s := range shaders {
		shader, err := ebiten.NewShader(s.src)
		if err != nil {
			ge.enabled = false
			return ge
		}
		*s.dest = shader
	}
	return ge
}

// IsEnabled reports whether the shader pipeline compiled successfully.
func (ge *GlassEffect) IsEnabled() bool {
	return ge != nil && ge.enabled
}

// Update advances the refraction animation clock by one 60fps frame.
func (ge *GlassEffect) Update() {
	if ge == nil {
		return
	}
	ge.time += 1.0 / 60.0
}

func (ge *GlassEffect) ensureImages(w, h int) {
	if ge.tempH == nil || ge.tempH.Bounds().Dx() != w || ge.tempH.Bounds().Dy() != h {
		ge.tempH = ebiten.NewImage(w, h)
	}
	if ge.tempV == nil || ge.tempV.Bounds().Dx() != w || ge.tempV.Bounds().Dy() != h {
		ge.tempV = ebiten.NewImage(w, h)
	}
}

// blurPass runs one separable blur direction, reading src and writing dst.
func (ge *GlassEffect) blurPass(dst, src *ebiten.Image, shader *ebiten.Shader, w, h int, sigma float64) {
	dst.Clear()
	dst.DrawRectShader(w, h, shader, &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]interface{}{"Sigma": float32(sigma)},
		Images:   [4]*ebiten.Image{src},
	})
}

// DrawGlass renders the region (x, y, w, h) of screen (already captured)
// blurred, refracted, and tinted. sigma controls blur spread (1-4
// recommended), refractionStrength the wave distortion amount (2-8
// recommended).
func (ge *GlassEffect) DrawGlass(screen *ebiten.Image, x, y, w, h int, tint color.RGBA, sigma, refractionStrength float64) {
	if !ge.IsEnabled() {
		ge.drawFallback(screen, x, y, w, h, tint)
		return
	}
	if w <= 0 || h <= 0 {
		return
	}

	ge.ensureImages(w, h)

	capture := &ebiten.DrawImageOptions{}
	capture.GeoM.Translate(float64(-x), float64(-y))
	ge.tempH.Clear()
	ge.tempH.DrawImage(screen, capture)

	ge.blurPass(ge.tempV, ge.tempH, ge.blurH, w, h, sigma)
	ge.blurPass(ge.tempH, ge.tempV, ge.blurV, w, h, sigma)

	glassOp := &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]interface{}{
			"Time":               float32(ge.time),
			"TintR":              float32(tint.R) / 255.0,
			"TintG":              float32(tint.G) / 255.0,
			"TintB":              float32(tint.B) / 255.0,
			"TintA":              float32(tint.A) / 255.0,
			"RefractionStrength": float32(refractionStrength),
		},
		Images: [4]*ebiten.Image{ge.tempH},
	}
	glassOp.GeoM.Translate(float64(x), float64(y))
	screen.DrawRectShader(w, h, ge.glass, glassOp)
}

func (ge *GlassEffect) drawFallback(screen *ebiten.Image, x, y, w, h int, tint color.RGBA) {
	fallback := ebiten.NewImage(w, h)
	fallback.Fill(tint)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(fallback, op)
}

// DrawGlassSimple draws glass with a fixed, moderate refraction strength.
func (ge *GlassEffect) DrawGlassSimple(screen *ebiten.Image, x, y, w, h int, tint color.RGBA, sigma float64) {
	ge.DrawGlass(screen, x, y, w, h, tint, sigma, 3.0)
}

// DrawGlassRect is DrawGlassSimple taking an image.Rectangle.
func (ge *GlassEffect) DrawGlassRect(screen *ebiten.Image, rect image.Rectangle, tint color.RGBA, sigma float64) {
	ge.DrawGlassSimple(screen, rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), tint, sigma)
}
