package texture

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Sizes and colors of the synthesized images.
const (
	PlaceholderWidth  = 1024
	PlaceholderHeight = 768
	LabelSize         = 1024
	LabelMaxRunes     = 20
	CardLabelWidth    = 1024
	CardLabelHeight   = 512
)

var (
	placeholderFrom = "#1f2741"
	placeholderTo   = "#516899"
	labelFrom       = "#324764"
	labelTo         = "#0f1725"

	// PixelColor is the flat fallback used when no gradient can be drawn.
	PixelColor = color.RGBA{80, 96, 122, 255}
)

// Typeface returns a label face at a pixel size. A nil Typeface draws with the built-in
// bitmap face scaled up.
type Typeface func(px float64) font.Face

var placeholder = sync.OnceValue(func() *image.RGBA {
	return Gradient(PlaceholderWidth, PlaceholderHeight, placeholderFrom, placeholderTo)
})

// Placeholder returns the shared gradient shown while an image loads and when a fetch without a
// label fails. Callers must not modify it.
func Placeholder() *image.RGBA { return placeholder() }

// Pixel returns a 1×1 image of PixelColor.
func Pixel() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, PixelColor)
	return img
}

// Gradient fills a w×h image with a diagonal gradient from the top-left corner (from) to the
// bottom-right corner (to). A non-positive size yields Pixel.
func Gradient(w, h int, from, to string) *image.RGBA {
	if w <= 0 || h <= 0 {
		return Pixel()
	}
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return Pixel()
	}
	var lut [256]color.RGBA
	for i := range lut {
		r, g, bl := a.BlendRgb(b, float64(i)/255).Clamped().RGB255()
		lut[i] = color.RGBA{r, g, bl, 255}
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	// Measured on the last pixel index so both corner pixels get the end colors.
	sw, sh := float64(max(w-1, 0)), float64(max(h-1, 0))
	den := sw*sw + sh*sh
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := 0.0
			if den > 0 {
				t = (float64(x)*sw + float64(y)*sh) / den
			}
			img.SetRGBA(x, y, lut[int(t*255+0.5)])
		}
	}
	return img
}

// LabelFallback is the square gradient with an inset border and the first LabelMaxRunes
// characters of label centered on it.
func LabelFallback(label string, tf Typeface) *image.RGBA {
	img := Gradient(LabelSize, LabelSize, labelFrom, labelTo)
	strokeRect(img, image.Rect(36, 36, LabelSize-36, LabelSize-36), 12, color.NRGBA{255, 255, 255, 64})
	if r := []rune(label); len(r) > LabelMaxRunes {
		label = string(r[:LabelMaxRunes])
	}
	drawText(img, label, tf, 72, LabelSize/2, LabelSize/2, true, color.NRGBA{255, 255, 255, 235})
	return img
}

// CardLabel is the transparent caption strip of a card overlay: a dark gradient rising toward
// the bottom with the title and date in the lower half.
func CardLabel(title, date string, tf Typeface) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CardLabelWidth, CardLabelHeight))
	for y := 0; y < CardLabelHeight; y++ {
		a := uint8(float64(y)/float64(CardLabelHeight-1)*0.95*255 + 0.5)
		c := color.NRGBA{4, 8, 18, a}
		for x := 0; x < CardLabelWidth; x++ {
			img.Set(x, y, c)
		}
	}
	// Drawn twice a pixel apart for a bold weight.
	drawText(img, title, tf, 66, 56, 370, false, color.NRGBA{229, 238, 255, 245})
	drawText(img, title, tf, 66, 57, 370, false, color.NRGBA{229, 238, 255, 245})
	drawText(img, date, tf, 46, 56, 445, false, color.NRGBA{196, 212, 244, 242})
	return img
}

func strokeRect(img *image.RGBA, r image.Rectangle, width int, c color.Color) {
	half := width / 2
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X-half, r.Min.Y-half, r.Max.X+half, r.Min.Y+half),
		image.Rect(r.Min.X-half, r.Max.Y-half, r.Max.X+half, r.Max.Y+half),
		image.Rect(r.Min.X-half, r.Min.Y+half, r.Min.X+half, r.Max.Y-half),
		image.Rect(r.Max.X-half, r.Min.Y+half, r.Max.X+half, r.Max.Y-half),
	}
	for _, e := range edges {
		draw.Draw(img, e, src, image.Point{}, draw.Over)
	}
}

// drawText draws s with its baseline at y. centered places the text's middle at (x, y)
// instead, like a canvas with middle baseline and center alignment.
func drawText(dst *image.RGBA, s string, tf Typeface, px float64, x, y int, centered bool, c color.Color) {
	if s == "" {
		return
	}
	if tf != nil {
		if face := tf(px); face != nil {
			m := face.Metrics()
			if centered {
				x -= font.MeasureString(face, s).Ceil() / 2
				y += (m.Ascent.Ceil() - m.Descent.Ceil()) / 2
			}
			d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face, Dot: fixed.P(x, y)}
			d.DrawString(s)
			return
		}
	}
	drawBitmapText(dst, s, px, x, y, centered, c)
}

// drawBitmapText renders s with basicfont on a scratch image and scales it to px.
func drawBitmapText(dst *image.RGBA, s string, px float64, x, y int, centered bool, c color.Color) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	h := face.Height
	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{Dst: scratch, Src: image.NewUniform(c), Face: face, Dot: fixed.P(0, face.Ascent)}
	d.DrawString(s)
	k := px / float64(h)
	sw, sh := max(1, int(float64(w)*k)), max(1, int(float64(h)*k))
	scaled := transform.Resize(scratch, sw, sh, transform.Linear)
	ascent := int(float64(face.Ascent) * k)
	if centered {
		x -= sw / 2
		y -= sh / 2
	} else {
		y -= ascent
	}
	r := image.Rect(x, y, x+sw, y+sh)
	draw.Draw(dst, r, scaled, image.Point{}, draw.Over)
}
