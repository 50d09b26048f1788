package render

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces are built once from the TTFs embedded in x/image, so no font
// files ship with the binary. Sizes are canvas units (72 DPI).
var (
	fontOnce sync.Once

	priceFace       font.Face // main price line, largest and boldest
	installFace     font.Face // secondary installment line
	badgeNumFace    font.Face // big installment count
	badgeTextFace   font.Face // badge labels and bank badge sub-line
	bankHeadFace    font.Face // bank badge headline
	placeholderFace font.Face
)

func ensureFaces() {
	fontOnce.Do(func() {
		bold := mustParse(gobold.TTF)
		regular := mustParse(goregular.TTF)

		priceFace = mustFace(bold, 92)
		installFace = mustFace(bold, 40)
		badgeNumFace = mustFace(bold, 72)
		badgeTextFace = mustFace(regular, 22)
		bankHeadFace = mustFace(bold, 40)
		placeholderFace = mustFace(regular, 36)
	})
}

func mustParse(ttf []byte) *opentype.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func mustFace(f *opentype.Font, size float64) font.Face {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	return face
}
