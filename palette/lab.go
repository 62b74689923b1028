package palette

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/colortally/image"
)

var (
	// for RGB-to-Lab conversion
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// Lab converts an 8-bit sRGB pixel to CIE Lab under D50.
func Lab(p image.Pixel) chromath.Lab {
	rgb := chromath.RGB{float64(p.R), float64(p.G), float64(p.B)}
	xyz := rgb2Xyz.Convert(rgb)
	return lab2Xyz.Invert(xyz)
}

// Distance is the CIE2000 color difference between two pixels.
func Distance(p0, p1 image.Pixel) float64 {
	return deltae.CIE2000(Lab(p0), Lab(p1), klch)
}
