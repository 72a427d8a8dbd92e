package deps

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/Jayesh2401/museum/internal/config"
	"github.com/Jayesh2401/museum/internal/texture"
)

// LabelFontName names the font the immersive theme draws its fallback labels with.
const LabelFontName = "label-font"

// FontDirs returns candidate base directories for fonts, relative to the working directory.
func FontDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// LabelFont is the label font dependency: local copies first, then the Google Fonts mirror.
func LabelFont() Dependency {
	var c []string
	for _, dir := range FontDirs() {
		c = append(c, dir+"/Inter-Bold.ttf", dir+"/label.ttf")
	}
	c = append(c,
		"https://raw.githubusercontent.com/google/fonts/main/ofl/inter/Inter%5Bopsz,wght%5D.ttf",
		"https://raw.githubusercontent.com/google/fonts/main/ofl/roboto/Roboto%5Bwdth,wght%5D.ttf",
	)
	return Dependency{Name: LabelFontName, Candidates: c}
}

// ForTheme lists what theme needs loaded before it can be built. Only the immersive theme
// has a hard dependency: the font its fallback labels are drawn with.
func ForTheme(theme config.Theme) []Dependency {
	switch theme {
	case config.ThemeImmersive:
		return []Dependency{LabelFont()}
	}
	return nil
}

// LoadFont parses a TTF or OTF payload into a typeface. Faces are created lazily per pixel
// size and reused.
func LoadFont(data []byte) (texture.Typeface, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("deps: font: %w", err)
	}
	var mu sync.Mutex
	faces := make(map[float64]font.Face)
	return func(px float64) font.Face {
		mu.Lock()
		defer mu.Unlock()
		if face, ok := faces[px]; ok {
			return face
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: px, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return nil
		}
		faces[px] = face
		return face
	}, nil
}
