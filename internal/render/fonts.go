package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontRegular *truetype.Font
	fontBold    *truetype.Font
	fontItalic  *truetype.Font
)

func init() {
	var err error
	if fontRegular, err = truetype.Parse(goregular.TTF); err != nil {
		panic(fmt.Errorf("parse regular font: %w", err))
	}
	if fontBold, err = truetype.Parse(gobold.TTF); err != nil {
		panic(fmt.Errorf("parse bold font: %w", err))
	}
	if fontItalic, err = truetype.Parse(goitalic.TTF); err != nil {
		panic(fmt.Errorf("parse italic font: %w", err))
	}
}

// newFace creates a face sized in pixels. Faces carry an unsynchronized
// glyph cache, so each render call builds its own.
func newFace(fnt *truetype.Font, sizePx float64) font.Face {
	return truetype.NewFace(fnt, &truetype.Options{Size: sizePx, Hinting: font.HintingFull})
}
