package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body  FontName = "body"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Lookup maps a layout font name to a loaded face, defaulting to Body.
func Lookup(name string) FontName {
	if _, ok := fonts[FontName(name)]; ok {
		return FontName(name)
	}
	return Body
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go fonts under Body, Title and Small.
func LoadDefaults() {
	LoadFontWithSize(Body, goregular.TTF, 18)
	LoadFontWithSize(Title, gobold.TTF, 40)
	LoadFontWithSize(Small, goregular.TTF, 12)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: Could not parse font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// Measure returns the advance width and line height of s in pixels.
func Measure(name FontName, s string) (w, h float64) {
	f := getFont(name)
	adv := font.MeasureString(f, s)
	m := f.Metrics()
	return float64(adv) / 64, float64(m.Height) / 64
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
